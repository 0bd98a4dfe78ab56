package services

import (
	"log"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/repository"
)

type OrderService interface {
	CreateOrder(order *models.Order) error
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	SendConfirmation(id uint) (*models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	mailer      MailerService
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, mailer MailerService) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, mailer: mailer}
}

// CreateOrder persists a syrup order, decrements the product's stock
// (clamped at zero) and mails customer and admin.
func (s *orderService) CreateOrder(order *models.Order) error {
	if !validEmail(order.CustomerEmail) {
		return ErrInvalidEmail
	}

	order.OrderType = "syrup"
	order.Status = string(models.OrderPending)
	if order.Quantity <= 0 {
		order.Quantity = 1
	}

	if err := s.orderRepo.Create(order); err != nil {
		return err
	}

	if order.ProductID != nil {
		if err := s.productRepo.DecrementStock(*order.ProductID, order.Quantity); err != nil {
			// The order stands; stock correction is an admin concern.
			log.Printf("Failed to decrement stock for product %d: %v", *order.ProductID, err)
		}
	}

	productName := s.productName(order)
	s.mailer.SendOrderConfirmation(order, productName)
	s.mailer.SendOrderAdminNotification(order, productName)
	return nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateStatus advances an order's lifecycle and mails the customer.
func (s *orderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.mailer.SendOrderStatusUpdate(order, s.productName(order))
	return order, nil
}

// SendConfirmation re-sends the current status mail to the customer and
// a notification to the admin.
func (s *orderService) SendConfirmation(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	productName := s.productName(order)
	s.mailer.SendOrderStatusUpdate(order, productName)
	s.mailer.SendOrderAdminNotification(order, productName)
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}

// productName resolves the referenced product defensively: orders may
// outlive their product.
func (s *orderService) productName(order *models.Order) string {
	if order.ProductID == nil {
		return "Onbekend product"
	}
	product, err := s.productRepo.GetByID(*order.ProductID)
	if err != nil {
		return "Onbekend product"
	}
	return product.Name
}

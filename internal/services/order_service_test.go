package services_test

import (
	"testing"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*models.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) GetAll() ([]models.Product, error) {
	var result []models.Product
	for id := uint(1); id < r.nextID; id++ {
		if product, ok := r.products[id]; ok {
			result = append(result, *product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateStock(id uint, stock int) error {
	product, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.Stock = stock
	return nil
}

func (r *fakeProductRepo) DecrementStock(id uint, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	product.Stock -= quantity
	if product.Stock < 0 {
		product.Stock = 0
	}
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var result []models.Order
	for id := uint(1); id < r.nextID; id++ {
		if order, ok := r.orders[id]; ok {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(id uint) error {
	delete(r.orders, id)
	return nil
}

func seedSyrup(t *testing.T, repo *fakeProductRepo, stock int) uint {
	t.Helper()
	product := &models.Product{
		Name:     "Vlierbloesem Siroop",
		Price:    decimal.RequireFromString("6.99"),
		Stock:    stock,
		MaxStock: 15,
		Category: string(models.CategorySyrup),
	}
	assert.NoError(t, repo.Create(product))
	return product.ID
}

func syrupOrder(productID uint, quantity int) *models.Order {
	return &models.Order{
		CustomerName:  "Anna de Vries",
		CustomerEmail: "anna@example.com",
		ProductID:     &productID,
		Quantity:      quantity,
		TotalAmount:   decimal.RequireFromString("13.98"),
	}
}

func TestCreateOrder_DecrementsStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := services.NewOrderService(orderRepo, productRepo, &recordingMailer{})

	productID := seedSyrup(t, productRepo, 3)

	err := svc.CreateOrder(syrupOrder(productID, 2))
	assert.NoError(t, err)

	product, _ := productRepo.GetByID(productID)
	assert.Equal(t, 1, product.Stock)

	// A further order cannot drive stock negative.
	err = svc.CreateOrder(syrupOrder(productID, 2))
	assert.NoError(t, err)

	product, _ = productRepo.GetByID(productID)
	assert.Equal(t, 0, product.Stock)
}

func TestCreateOrder_Defaults(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	mailer := &recordingMailer{}
	svc := services.NewOrderService(orderRepo, productRepo, mailer)

	productID := seedSyrup(t, productRepo, 5)
	order := syrupOrder(productID, 0)

	err := svc.CreateOrder(order)
	assert.NoError(t, err)
	assert.Equal(t, "syrup", order.OrderType)
	assert.Equal(t, string(models.OrderPending), order.Status)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, 1, mailer.adminNotices)
}

func TestCreateOrder_InvalidEmail(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := services.NewOrderService(orderRepo, productRepo, &recordingMailer{})

	productID := seedSyrup(t, productRepo, 5)
	order := syrupOrder(productID, 1)
	order.CustomerEmail = "nope"

	err := svc.CreateOrder(order)
	assert.ErrorIs(t, err, services.ErrInvalidEmail)
	assert.Empty(t, orderRepo.orders)
}

func TestCreateOrder_MissingProductTolerated(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	svc := services.NewOrderService(orderRepo, productRepo, &recordingMailer{})

	// Orphaned product reference: the order still stands.
	missing := uint(42)
	err := svc.CreateOrder(syrupOrder(missing, 1))
	assert.NoError(t, err)
	assert.Len(t, orderRepo.orders, 1)
}

func TestOrderUpdateStatus(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo()
	mailer := &recordingMailer{}
	svc := services.NewOrderService(orderRepo, productRepo, mailer)

	productID := seedSyrup(t, productRepo, 5)
	assert.NoError(t, svc.CreateOrder(syrupOrder(productID, 1)))
	mailer.statusUpdates = nil

	order, err := svc.UpdateStatus(1, string(models.OrderReady))
	assert.NoError(t, err)
	assert.Equal(t, string(models.OrderReady), order.Status)
	assert.Equal(t, []string{"anna@example.com"}, mailer.statusUpdates)

	_, err = svc.UpdateStatus(1, "verzonden")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = svc.UpdateStatus(99, string(models.OrderReady))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package services

import (
	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/internal/repository"
)

type ProductService interface {
	CreateProduct(product *models.Product) error
	GetProductByID(id uint) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	UpdateStock(id uint, stock int) (*models.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(product *models.Product) error {
	if product.Badges == nil {
		product.Badges = []string{}
	}
	return s.productRepo.Create(product)
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) UpdateProduct(product *models.Product) error {
	return s.productRepo.Update(product)
}

// UpdateStock sets the stock level directly, the admin correction path.
func (s *productService) UpdateStock(id uint, stock int) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	product.Stock = stock
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.GetByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

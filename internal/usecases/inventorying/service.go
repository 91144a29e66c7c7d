package inventorying

import (
	"strings"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
)

type InventoryService interface {
	ListProducts() ([]*domain.Product, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(update *domain.UpdateProductRequest) error
	DeleteProduct(productID string) error
}

type Service struct {
	productRepo repository.ProductRepository
}

func NewService(productRepo repository.ProductRepository) InventoryService {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListProducts()
}

// CreateProduct valida o produto na fronteira antes de persistir.
// Entrada incompleta é rejeitada com erro descritivo, nunca preenchida em silêncio.
func (s *Service) CreateProduct(product *domain.Product) (*domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)

	if err := validateProduct(product.Name, product.Stock, product.BasePrice); err != nil {
		return nil, err
	}

	return s.productRepo.CreateProduct(product)
}

func (s *Service) UpdateProduct(update *domain.UpdateProductRequest) error {
	if update.ID == "" {
		return ErrMissingID
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return ErrMissingName
		}
		update.Name = &trimmed
	}

	if update.Stock != nil && *update.Stock < 0 {
		return ErrNegativeStock
	}

	if update.BasePrice != nil && *update.BasePrice < 0 {
		return ErrNegativePrice
	}

	existing, err := s.productRepo.GetProductByID(update.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	return s.productRepo.UpdateProduct(update)
}

func (s *Service) DeleteProduct(productID string) error {
	if productID == "" {
		return ErrMissingID
	}

	existing, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	return s.productRepo.DeleteProduct(productID)
}

func validateProduct(name string, stock int, price float64) error {
	if name == "" {
		return ErrMissingName
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}

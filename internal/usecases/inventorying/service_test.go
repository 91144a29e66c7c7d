package inventorying

import (
	"testing"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository/mocks"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string  { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		product  *domain.Product
		setup    func(productRepo *mocks.MockProductRepository)
		validate func(t *testing.T, created *domain.Product, err error)
	}{
		{
			name:    "Produto válido é persistido",
			product: &domain.Product{Name: "Pomada Modeladora", Stock: 24, BasePrice: 12.50},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().
					CreateProduct(gomock.Any()).
					DoAndReturn(func(p *domain.Product) (*domain.Product, error) {
						p.ID = "PROD001"
						return p, nil
					})
			},
			validate: func(t *testing.T, created *domain.Product, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "PROD001", created.ID)
				assert.Equal(t, "Pomada Modeladora", created.Name)
			},
		},
		{
			name:    "Nome em branco é rejeitado",
			product: &domain.Product{Name: "   ", Stock: 5, BasePrice: 10.0},
			setup:   func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, created *domain.Product, err error) {
				assert.ErrorIs(t, err, ErrMissingName)
				assert.Nil(t, created)
			},
		},
		{
			name:    "Estoque negativo é rejeitado",
			product: &domain.Product{Name: "Gel Fixador", Stock: -1, BasePrice: 5.50},
			setup:   func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, created *domain.Product, err error) {
				assert.ErrorIs(t, err, ErrNegativeStock)
			},
		},
		{
			name:    "Preço negativo é rejeitado",
			product: &domain.Product{Name: "Gel Fixador", Stock: 3, BasePrice: -0.50},
			setup:   func(productRepo *mocks.MockProductRepository) {},
			validate: func(t *testing.T, created *domain.Product, err error) {
				assert.ErrorIs(t, err, ErrNegativePrice)
			},
		},
		{
			name:    "Estoque e preço zero são válidos",
			product: &domain.Product{Name: "Brinde", Stock: 0, BasePrice: 0},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().CreateProduct(gomock.Any()).
					DoAndReturn(func(p *domain.Product) (*domain.Product, error) { return p, nil })
			},
			validate: func(t *testing.T, created *domain.Product, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			tt.setup(productRepo)

			service := NewService(productRepo)
			created, err := service.CreateProduct(tt.product)
			tt.validate(t, created, err)
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &domain.Product{ID: "PROD001", Name: "Pomada", Stock: 24, BasePrice: 12.50}

	tests := []struct {
		name     string
		update   *domain.UpdateProductRequest
		setup    func(productRepo *mocks.MockProductRepository)
		expected error
	}{
		{
			name:   "Atualização parcial apenas do estoque",
			update: &domain.UpdateProductRequest{ID: "PROD001", Stock: intPtr(30)},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetProductByID("PROD001").Return(existing, nil)
				productRepo.EXPECT().UpdateProduct(gomock.Any()).Return(nil)
			},
			expected: nil,
		},
		{
			name:     "Identificador ausente",
			update:   &domain.UpdateProductRequest{},
			setup:    func(productRepo *mocks.MockProductRepository) {},
			expected: ErrMissingID,
		},
		{
			name:     "Nome em branco na atualização é rejeitado",
			update:   &domain.UpdateProductRequest{ID: "PROD001", Name: stringPtr("  ")},
			setup:    func(productRepo *mocks.MockProductRepository) {},
			expected: ErrMissingName,
		},
		{
			name:     "Estoque negativo na atualização é rejeitado",
			update:   &domain.UpdateProductRequest{ID: "PROD001", Stock: intPtr(-5)},
			setup:    func(productRepo *mocks.MockProductRepository) {},
			expected: ErrNegativeStock,
		},
		{
			name:     "Preço negativo na atualização é rejeitado",
			update:   &domain.UpdateProductRequest{ID: "PROD001", BasePrice: floatPtr(-1.0)},
			setup:    func(productRepo *mocks.MockProductRepository) {},
			expected: ErrNegativePrice,
		},
		{
			name:   "Produto inexistente",
			update: &domain.UpdateProductRequest{ID: "PROD999", Stock: intPtr(1)},
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetProductByID("PROD999").Return(nil, nil)
			},
			expected: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			tt.setup(productRepo)

			service := NewService(productRepo)
			err := service.UpdateProduct(tt.update)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		productID string
		setup     func(productRepo *mocks.MockProductRepository)
		expected  error
	}{
		{
			name:      "Produto existente é removido",
			productID: "PROD001",
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetProductByID("PROD001").Return(&domain.Product{ID: "PROD001"}, nil)
				productRepo.EXPECT().DeleteProduct("PROD001").Return(nil)
			},
			expected: nil,
		},
		{
			name:      "Identificador ausente",
			productID: "",
			setup:     func(productRepo *mocks.MockProductRepository) {},
			expected:  ErrMissingID,
		},
		{
			name:      "Produto inexistente",
			productID: "PROD999",
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().GetProductByID("PROD999").Return(nil, nil)
			},
			expected: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			tt.setup(productRepo)

			service := NewService(productRepo)
			err := service.DeleteProduct(tt.productID)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

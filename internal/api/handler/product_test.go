package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository/mocks"
	"github.com/cortesdelisboa/barbershop-api/internal/api/handler/router"
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/inventorying"
	"github.com/cortesdelisboa/barbershop-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// withClaims injeta as claims no contexto, como o middleware de autenticação faria
func withClaims(next http.Handler, claims *domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func managerClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRoleID: middleware.RoleManager}
}

func newProductsServer(t *testing.T, productRepo *mocks.MockProductRepository, claims *domain.Claims) *httptest.Server {
	t.Helper()

	service := inventorying.NewService(productRepo)
	rt := router.New(router.WithRoutes(Products(service)...))

	return httptest.NewServer(withClaims(rt, claims))
}

func TestListProductsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().ListProducts().Return([]*domain.Product{
		{ID: "PROD001", Name: "Pomada Modeladora", Stock: 24, BasePrice: 12.50},
	}, nil)

	server := newProductsServer(t, productRepo, managerClaims())
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/products")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           string
		setup          func(productRepo *mocks.MockProductRepository)
		expectedStatus int
	}{
		{
			name: "Produto válido",
			body: `{"name":"Pomada Modeladora","stock":24,"base_price":12.5}`,
			setup: func(productRepo *mocks.MockProductRepository) {
				productRepo.EXPECT().
					CreateProduct(gomock.Any()).
					DoAndReturn(func(p *domain.Product) (*domain.Product, error) {
						p.ID = "PROD001"
						return p, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Nome ausente",
			body:           `{"stock":24,"base_price":12.5}`,
			setup:          func(productRepo *mocks.MockProductRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Estoque negativo",
			body:           `{"name":"Pomada","stock":-1,"base_price":12.5}`,
			setup:          func(productRepo *mocks.MockProductRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Corpo inválido",
			body:           `{invalid`,
			setup:          func(productRepo *mocks.MockProductRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mocks.NewMockProductRepository(ctrl)
			tt.setup(productRepo)

			server := newProductsServer(t, productRepo, managerClaims())
			defer server.Close()

			resp, err := http.Post(server.URL+"/v1/products", "application/json", strings.NewReader(tt.body))
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestDeleteProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)
	productRepo.EXPECT().GetProductByID("PROD001").Return(&domain.Product{ID: "PROD001"}, nil)
	productRepo.EXPECT().DeleteProduct("PROD001").Return(nil)

	server := newProductsServer(t, productRepo, managerClaims())
	defer server.Close()

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/v1/products/PROD001", nil)
	assert.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// TestProductsHandler_BarberForbidden garante que barbeiros não acessam o estoque
func TestProductsHandler_BarberForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productRepo := mocks.NewMockProductRepository(ctrl)

	barberID := "BARB001"
	claims := &domain.Claims{UserID: 2, UserRoleID: middleware.RoleBarber, UserBarberID: &barberID}

	server := newProductsServer(t, productRepo, claims)
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/products")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

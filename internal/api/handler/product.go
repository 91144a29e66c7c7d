package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/inventorying"
	"github.com/cortesdelisboa/barbershop-api/pkg/apiErrors"
	"github.com/cortesdelisboa/barbershop-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// ListProducts lista os produtos do estoque
func ListProducts(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts()
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateProduct cadastra um novo produto
func CreateProduct(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var product *domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		product, err := service.CreateProduct(product)
		if err != nil {
			logger.WithError(err).Warn("Erro ao cadastrar produto")
			writeInventoryError(w, err, "Erro ao cadastrar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// UpdateProduct atualiza campos de um produto existente
func UpdateProduct(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var update domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		update.ID = id

		if err := service.UpdateProduct(&update); err != nil {
			logger.WithError(err).Warn("Erro ao atualizar produto")
			writeInventoryError(w, err, "Erro ao atualizar produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteProduct remove um produto do estoque
func DeleteProduct(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			logger.WithError(err).Warn("Erro ao remover produto")
			writeInventoryError(w, err, "Erro ao remover produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeInventoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, inventorying.ErrMissingName),
		errors.Is(err, inventorying.ErrMissingID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, inventorying.ErrNegativeStock),
		errors.Is(err, inventorying.ErrNegativePrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, inventorying.ErrProductNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}

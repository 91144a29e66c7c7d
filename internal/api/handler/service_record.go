package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/servicing"
	"github.com/cortesdelisboa/barbershop-api/pkg/apiErrors"
	"github.com/cortesdelisboa/barbershop-api/pkg/log"
	"github.com/cortesdelisboa/barbershop-api/pkg/middleware"
)

// RegisterService registra um serviço concluído pelo barbeiro autenticado
func RegisterService(service servicing.ServiceRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserBarberID == nil {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário não está vinculado a um barbeiro", nil)
			return
		}

		var record *domain.ServiceRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// O barbeiro vem das claims, nunca do corpo da requisição
		record.BarberID = *userClaims.UserBarberID

		record, err := service.RegisterService(record)
		if err != nil {
			logger.WithError(err).Warn("Erro ao registrar serviço")
			writeServicingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// ListServices lista os serviços registrados; o gerente pode filtrar por
// barbeiro, o barbeiro enxerga apenas os próprios registros
func ListServices(service servicing.ServiceRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		barberID := r.URL.Query().Get("barber_id")
		if userClaims.UserRoleID == middleware.RoleBarber {
			if userClaims.UserBarberID == nil {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário não está vinculado a um barbeiro", nil)
				return
			}
			barberID = *userClaims.UserBarberID
		}

		records, err := service.ListServices(barberID)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar serviços")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar serviços", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func writeServicingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, servicing.ErrMissingBarberID),
		errors.Is(err, servicing.ErrMissingName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, servicing.ErrNegativePrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, servicing.ErrBarberNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar serviço", nil)
	}
}

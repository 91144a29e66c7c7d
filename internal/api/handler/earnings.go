package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/earning"
	"github.com/cortesdelisboa/barbershop-api/pkg/apiErrors"
	"github.com/cortesdelisboa/barbershop-api/pkg/log"
	"github.com/cortesdelisboa/barbershop-api/pkg/middleware"
)

// GetMyEarnings retorna o resumo de ganhos do barbeiro autenticado,
// calculado contra o instante da chamada
func GetMyEarnings(service earning.EarningsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.UserBarberID == nil {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário não está vinculado a um barbeiro", nil)
			return
		}

		summary, err := service.GetEarnings(*userClaims.UserBarberID)
		if err != nil {
			logger.WithError(err).Error("Erro ao calcular ganhos do barbeiro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular ganhos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/pkg/apiErrors"
	"github.com/cortesdelisboa/barbershop-api/pkg/log"
)

// ListBarbers lista os barbeiros com contagem de serviços, avaliação e saldo
func ListBarbers(barberRepo repository.BarberRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		barbers, err := barberRepo.ListBarbers()
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar barbeiros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar barbeiros", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(barbers); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

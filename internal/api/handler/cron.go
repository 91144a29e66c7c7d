package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/internal/scheduler"
	"github.com/cortesdelisboa/barbershop-api/pkg/apiErrors"
	"github.com/cortesdelisboa/barbershop-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job aceitos para execução manual
const (
	CronJobTypeLowStock = "low-stock"
)

// CronJobServices contém os agendadores disponíveis para execução manual
type CronJobServices struct {
	LowStockSyncService *scheduler.LowStockSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeLowStock:
			if services.LowStockSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de alerta de estoque não disponível", nil)
				return
			}
			go services.LowStockSyncService.RunNow()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: low-stock", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"type":   cronType,
		}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]interface{}{}
		if services.LowStockSyncService != nil {
			status[CronJobTypeLowStock] = services.LowStockSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

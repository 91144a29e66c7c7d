package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/internal/usecases/reporting"
	"github.com/cortesdelisboa/barbershop-api/pkg/apiErrors"
	"github.com/cortesdelisboa/barbershop-api/pkg/log"
)

// GetReportSummary retorna o resumo de estoque e comissões recalculado sob demanda
func GetReportSummary(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetSummary()
		if err != nil {
			logger.WithError(err).Error("Erro ao calcular resumo do relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo do relatório", nil)
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

// ExportReport gera o relatório em PDF e devolve os bytes para download
func ExportReport(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		document, filename, err := service.ExportReport()
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Ocorreu um erro ao gerar o relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(document); err != nil {
			logger.WithError(err).Error("Erro ao enviar o relatório")
		}
	}
}

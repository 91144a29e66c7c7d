package reporting

import (
	"github.com/cortesdelisboa/barbershop-api/internal/domain"
)

// Aggregate computa o resumo de estoque e comissões a partir das coleções
// atuais. Função pura: coleções vazias produzem totais zerados e a ordem dos
// elementos não altera o resultado.
func Aggregate(products []*domain.Product, barbers []*domain.Barber, lowStockThreshold int) *domain.ReportSummary {
	summary := &domain.ReportSummary{
		TotalBarbers: len(barbers),
	}

	for _, product := range products {
		summary.TotalStock += product.Stock
		if product.Stock < lowStockThreshold {
			summary.LowStockCount++
		}
	}

	for _, barber := range barbers {
		summary.TotalBalance += barber.Balance
	}

	return summary
}

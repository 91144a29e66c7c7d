package reporting

import "github.com/cortesdelisboa/barbershop-api/internal/domain"

// DocumentRenderer transforma um relatório em um documento imprimível.
// A implementação concreta fica em infrastructure/render.
type DocumentRenderer interface {
	RenderReport(report *domain.Report) ([]byte, error)
}

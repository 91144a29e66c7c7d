package render

import (
	"strings"
	"testing"
	"time"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	renderer := NewPDFRenderer()

	report := &domain.Report{
		GeneratedAt: time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC),
		Products: []*domain.Product{
			{ID: "PROD001", Name: "Pomada Modeladora", Stock: 24, BasePrice: 12.50},
			{ID: "PROD002", Name: "Óleo para Barba", Stock: 8, BasePrice: 9.90},
		},
		Barbers: []*domain.Barber{
			{ID: "BARB001", Name: "João Ferreira", Services: 34, Rating: 4.8, Balance: 230.40},
		},
		Summary: &domain.ReportSummary{
			TotalBarbers:  1,
			TotalBalance:  230.40,
			TotalStock:    32,
			LowStockCount: 1,
		},
	}

	document, err := renderer.RenderReport(report)
	assert.NoError(t, err)
	assert.NotEmpty(t, document)

	// Todo PDF válido começa com o magic number %PDF
	assert.True(t, strings.HasPrefix(string(document), "%PDF"))
}

// TestRenderReport_EmptyCollections garante que um relatório sem dados ainda
// produz um documento válido com as seções fixas
func TestRenderReport_EmptyCollections(t *testing.T) {
	renderer := NewPDFRenderer()

	report := &domain.Report{
		GeneratedAt: time.Now(),
		Products:    []*domain.Product{},
		Barbers:     []*domain.Barber{},
		Summary:     &domain.ReportSummary{},
	}

	document, err := renderer.RenderReport(report)
	assert.NoError(t, err)
	assert.NotEmpty(t, document)
	assert.True(t, strings.HasPrefix(string(document), "%PDF"))
}

// TestRenderReport_Deterministic verifica que a mesma entrada gera o mesmo documento
func TestRenderReport_Deterministic(t *testing.T) {
	renderer := NewPDFRenderer()

	report := &domain.Report{
		GeneratedAt: time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC),
		Products:    []*domain.Product{{ID: "PROD001", Name: "Pomada", Stock: 5, BasePrice: 10.0}},
		Barbers:     []*domain.Barber{{ID: "BARB001", Name: "João", Services: 1, Rating: 5.0, Balance: 8.0}},
		Summary:     &domain.ReportSummary{TotalBarbers: 1, TotalBalance: 8.0, TotalStock: 5, LowStockCount: 1},
	}

	first, err := renderer.RenderReport(report)
	assert.NoError(t, err)

	second, err := renderer.RenderReport(report)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

package reporting

import (
	"testing"

	"github.com/cortesdelisboa/barbershop-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name      string
		products  []*domain.Product
		barbers   []*domain.Barber
		threshold int
		expected  *domain.ReportSummary
	}{
		{
			name: "Estoques mistos - conta apenas os abaixo do limite",
			products: []*domain.Product{
				{ID: "PROD001", Name: "Pomada", Stock: 15, BasePrice: 12.50},
				{ID: "PROD002", Name: "Óleo para Barba", Stock: 8, BasePrice: 9.90},
				{ID: "PROD003", Name: "Shampoo", Stock: 12, BasePrice: 7.50},
			},
			barbers: []*domain.Barber{
				{ID: "BARB001", Name: "João", Balance: 120.50},
				{ID: "BARB002", Name: "Miguel", Balance: 80.25},
			},
			threshold: 10,
			expected: &domain.ReportSummary{
				TotalBarbers:  2,
				TotalBalance:  200.75,
				TotalStock:    35,
				LowStockCount: 1,
			},
		},
		{
			name:      "Coleções vazias - totais zerados",
			products:  []*domain.Product{},
			barbers:   []*domain.Barber{},
			threshold: 10,
			expected:  &domain.ReportSummary{},
		},
		{
			name: "Estoque exatamente no limite não conta como baixo",
			products: []*domain.Product{
				{ID: "PROD001", Name: "Pomada", Stock: 10},
				{ID: "PROD002", Name: "Cera", Stock: 9},
			},
			barbers:   []*domain.Barber{},
			threshold: 10,
			expected: &domain.ReportSummary{
				TotalStock:    19,
				LowStockCount: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.products, tt.barbers, tt.threshold)
			assert.Equal(t, tt.expected, summary)
		})
	}
}

// TestAggregate_OrderInvariance garante que reordenar as coleções não altera o resumo
func TestAggregate_OrderInvariance(t *testing.T) {
	products := []*domain.Product{
		{ID: "PROD001", Stock: 15},
		{ID: "PROD002", Stock: 8},
		{ID: "PROD003", Stock: 12},
	}
	barbers := []*domain.Barber{
		{ID: "BARB001", Balance: 50.0},
		{ID: "BARB002", Balance: 70.0},
	}

	reversedProducts := []*domain.Product{products[2], products[1], products[0]}
	reversedBarbers := []*domain.Barber{barbers[1], barbers[0]}

	assert.Equal(t,
		Aggregate(products, barbers, 10),
		Aggregate(reversedProducts, reversedBarbers, 10),
	)
}

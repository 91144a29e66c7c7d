package domain

import "time"

// ReportSummary é o resumo derivado de estoque e comissões.
// Recalculado sob demanda, nunca persistido.
type ReportSummary struct {
	TotalBarbers  int     `json:"total_barbers"`
	TotalBalance  float64 `json:"total_balance"`
	TotalStock    int     `json:"total_stock"`
	LowStockCount int     `json:"low_stock_count"`
}

// Report agrupa as coleções e o resumo entregues ao renderizador de documentos
type Report struct {
	GeneratedAt time.Time
	Products    []*Product
	Barbers     []*Barber
	Summary     *ReportSummary
}

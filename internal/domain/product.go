package domain

import "time"

// Product representa um produto do estoque da barbearia
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	BasePrice float64   `json:"base_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProductRequest representa uma atualização parcial de produto.
// Campos nulos são mantidos como estão no banco.
type UpdateProductRequest struct {
	ID        string   `json:"id"`
	Name      *string  `json:"name"`
	Stock     *int     `json:"stock"`
	BasePrice *float64 `json:"base_price"`
}

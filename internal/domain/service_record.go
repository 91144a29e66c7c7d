package domain

import "time"

// ServiceRecord representa um serviço concluído registrado por um barbeiro.
// Imutável após a criação.
type ServiceRecord struct {
	ID        string    `json:"id"`
	BarberID  string    `json:"barber_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import "time"

// Barber representa um barbeiro e seu saldo de comissões pendentes
type Barber struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Services  int       `json:"services"`
	Rating    float64   `json:"rating"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

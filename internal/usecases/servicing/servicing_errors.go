package servicing

import "errors"

var (
	ErrMissingBarberID = errors.New("identificador do barbeiro é obrigatório")
	ErrMissingName     = errors.New("nome do serviço é obrigatório")
	ErrNegativePrice   = errors.New("preço não pode ser negativo")
	ErrBarberNotFound  = errors.New("barbeiro não encontrado")
)

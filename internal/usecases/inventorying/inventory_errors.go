package inventorying

import "errors"

var (
	ErrMissingName     = errors.New("nome do produto é obrigatório")
	ErrNegativeStock   = errors.New("estoque não pode ser negativo")
	ErrNegativePrice   = errors.New("preço não pode ser negativo")
	ErrMissingID       = errors.New("identificador do produto é obrigatório")
	ErrProductNotFound = errors.New("produto não encontrado")
)

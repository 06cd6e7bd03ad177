package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidInput parámetro de consulta mal formado (limit, offset, min_amount).
	ErrInvalidInput = errors.New("entrada inválida")
)

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForeignKey         = errors.New("referencia inválida o recurso en uso")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrProductNotFound    = errors.New("producto no encontrado")
)

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrAlertNotFound   = errors.New("alerta no encontrada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
)

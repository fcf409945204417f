package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Errores del subsistema de conciliación de inventario.
	ErrInvalidQuantity        = errors.New("cantidad inválida")
	ErrDanglingReference      = errors.New("el movimiento referencia un artículo inexistente")
	ErrInvalidRange           = errors.New("rango de fechas inválido")
	ErrConcurrentModification = errors.New("el artículo fue modificado por otro usuario")
)

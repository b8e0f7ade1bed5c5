package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El mapeo a códigos HTTP vive en la capa interfaces/http.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrTimeout indica que la operación no terminó dentro del plazo (lock sobre la
	// fila caliente, conexión caída). El caller puede reintentar; los demás errores no.
	ErrTimeout = errors.New("la operación excedió el tiempo límite")
)

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound la búsqueda por ID no encontró la fila.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidInput cuerpo o parámetro mal formado.
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrConfiguration configuración de datasource ausente o inválida; fatal en el arranque.
	ErrConfiguration = errors.New("configuración inválida")
	// ErrPersistence fallo de conectividad o de constraint en el store; no se reintenta.
	ErrPersistence  = errors.New("error de persistencia")
	ErrUnauthorized = errors.New("no autorizado")
)

package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrAlreadyApproved    = errors.New("el consumo ya fue aprobado")
	ErrInvariantViolation = errors.New("cantidad en caché no coincide con el libro de movimientos")
)

// InsufficientStockError detalla una salida rechazada por falta de existencias.
// Envuelve ErrInsufficientStock para que el caller pueda usar errors.Is.
type InsufficientStockError struct {
	LotID     string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente en lote %s: solicitado %s, disponible %s",
		e.LotID, e.Requested.String(), e.Available.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InvariantViolationError señala que la cantidad cacheada de un lote no es igual
// a la derivada de sus movimientos. Es una señal de corrupción de datos: se
// registra en el log y se propaga como fallo duro, nunca se parchea en silencio.
type InvariantViolationError struct {
	LotID   string
	Cached  decimal.Decimal
	Derived decimal.Decimal
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariante violado en lote %s: cantidad_actual=%s, derivada del libro=%s",
		e.LotID, e.Cached.String(), e.Derived.String())
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }

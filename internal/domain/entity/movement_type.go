package entity

// Códigos semánticos de tipo de movimiento. La resolución de tipos se hace
// siempre por código, nunca por factor: varios tipos comparten factor y
// buscar "el tipo con factor -1" sería ambiguo.
const (
	MovementCodeDonationIn    = "donation_in"     // entrada por donativo
	MovementCodeBazaarSaleOut = "bazaar_sale_out" // salida por venta de bazar
	MovementCodeKitchenOut    = "kitchen_out"     // salida por consumo de cocina
	MovementCodeAdjustIn      = "adjust_in"       // ajuste de entrada (corrección manual)
	MovementCodeAdjustOut     = "adjust_out"      // ajuste de salida (merma, corrección)
)

// Factores permitidos: +1 suma existencias, -1 las resta.
const (
	FactorEntry = 1
	FactorExit  = -1
)

// MovementType es un dato de referencia que mapea un tipo de movimiento a su
// factor con signo. Cambia rara vez; se siembra al crear la base.
type MovementType struct {
	ID     string
	Code   string
	Name   string // ej. "Entrada Donativo", "Salida por Venta"
	Factor int    // +1 o -1
}

// IsEntry indica si el tipo suma existencias.
func (t MovementType) IsEntry() bool { return t.Factor > 0 }

// Package balance derives the financial summary for a date window
// from persisted pedidos and gastos. A Balance has no lifecycle of its
// own: it is recomputed on demand and never stored.
package balance

import (
	"time"

	"heladero/internal/core/types"
)

// Balance is the financial summary for one window.
type Balance struct {
	// Unit totals across all fetched pedidos.
	TotalAgua  int `json:"totalAgua"`
	TotalCrema int `json:"totalCrema"`

	// Gross income split by payment channel (agua + crema totals).
	PlataTransferencia types.Money `json:"plataTransferencia"`
	PlataEfectivo      types.Money `json:"plataEfectivo"`

	// Shipping across all pedidos regardless of payment method;
	// CantidadEnvios counts only pedidos with a positive shipping cost.
	CostoEnvioTotal types.Money `json:"costoEnvioTotal"`
	CantidadEnvios  int         `json:"cantidadEnvios"`

	// Active gastos in the window.
	TotalGastos    types.Money `json:"totalGastos"`
	CantidadGastos int         `json:"cantidadGastos"`

	// EfectivoFinal = PlataEfectivo - CostoEnvioTotal - TotalGastos.
	// May be negative when shipping and gastos exceed cash collected;
	// that is a valid signal, not an error.
	EfectivoFinal types.Money `json:"efectivoFinal"`

	// IngresoTotal = PlataEfectivo + PlataTransferencia.
	IngresoTotal types.Money `json:"ingresoTotal"`
}

// Periodo is an inclusive date window [Desde, Hasta].
type Periodo struct {
	Desde time.Time `json:"desde"`
	Hasta time.Time `json:"hasta"`
}

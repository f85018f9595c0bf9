package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"heladero/internal/domain/balance"
)

// BalanceResponse is the financial summary for a window, together with
// the window it was computed over.
type BalanceResponse struct {
	Desde time.Time `json:"desde"`
	Hasta time.Time `json:"hasta"`

	TotalAgua          int             `json:"totalAgua"`
	TotalCrema         int             `json:"totalCrema"`
	PlataTransferencia decimal.Decimal `json:"plataTransferencia"`
	PlataEfectivo      decimal.Decimal `json:"plataEfectivo"`
	CostoEnvioTotal    decimal.Decimal `json:"costoEnvioTotal"`
	CantidadEnvios     int             `json:"cantidadEnvios"`
	TotalGastos        decimal.Decimal `json:"totalGastos"`
	CantidadGastos     int             `json:"cantidadGastos"`
	EfectivoFinal      decimal.Decimal `json:"efectivoFinal"`
	IngresoTotal       decimal.Decimal `json:"ingresoTotal"`
}

// FromBalance maps a computed balance and its window to a response.
func FromBalance(b *balance.Balance, periodo balance.Periodo) BalanceResponse {
	return BalanceResponse{
		Desde:              periodo.Desde,
		Hasta:              periodo.Hasta,
		TotalAgua:          b.TotalAgua,
		TotalCrema:         b.TotalCrema,
		PlataTransferencia: b.PlataTransferencia,
		PlataEfectivo:      b.PlataEfectivo,
		CostoEnvioTotal:    b.CostoEnvioTotal,
		CantidadEnvios:     b.CantidadEnvios,
		TotalGastos:        b.TotalGastos,
		CantidadGastos:     b.CantidadGastos,
		EfectivoFinal:      b.EfectivoFinal,
		IngresoTotal:       b.IngresoTotal,
	}
}

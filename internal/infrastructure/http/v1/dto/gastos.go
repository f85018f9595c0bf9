package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"heladero/internal/domain/expenses"
)

// CrearGastoRequest records a new cash expense.
type CrearGastoRequest struct {
	Monto decimal.Decimal `json:"monto" binding:"required"`
}

// GastoResponse is one gasto.
type GastoResponse struct {
	ID        string          `json:"id"`
	Monto     decimal.Decimal `json:"monto"`
	Activo    bool            `json:"activo"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FromGasto maps a domain gasto to a response.
func FromGasto(g *expenses.Gasto) GastoResponse {
	return GastoResponse{
		ID:        g.ID.String(),
		Monto:     g.Monto,
		Activo:    g.Activo,
		CreatedAt: g.CreatedAt,
	}
}

// FromGastos maps a slice of gastos to responses.
func FromGastos(gastos []expenses.Gasto) []GastoResponse {
	out := make([]GastoResponse, 0, len(gastos))
	for i := range gastos {
		out = append(out, FromGasto(&gastos[i]))
	}
	return out
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"heladero/internal/domain/pricing"
)

// ReglaRequest is one threshold rule of a new price list.
type ReglaRequest struct {
	TipoProducto   string          `json:"tipoProducto" binding:"required"`
	MinCantidad    int             `json:"minCantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CrearListaRequest creates a price list and activates it.
type CrearListaRequest struct {
	Nombre string         `json:"nombre" binding:"required"`
	Reglas []ReglaRequest `json:"reglas" binding:"required"`
}

// ToNuevasReglas maps request rules to domain input.
func (r CrearListaRequest) ToNuevasReglas() []pricing.NuevaRegla {
	reglas := make([]pricing.NuevaRegla, 0, len(r.Reglas))
	for _, regla := range r.Reglas {
		reglas = append(reglas, pricing.NuevaRegla{
			TipoProducto:   pricing.TipoProducto(regla.TipoProducto),
			MinCantidad:    regla.MinCantidad,
			PrecioUnitario: regla.PrecioUnitario,
		})
	}
	return reglas
}

// ReglaResponse is one rule of a price list.
type ReglaResponse struct {
	ID             string          `json:"id"`
	TipoProducto   string          `json:"tipoProducto"`
	MinCantidad    int             `json:"minCantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// ListaResponse is a price list with its rules.
type ListaResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Activa    bool            `json:"activa"`
	CreatedAt time.Time       `json:"createdAt"`
	Reglas    []ReglaResponse `json:"reglas,omitempty"`
}

// FromLista maps a domain list and its rules to a response.
func FromLista(lista *pricing.Lista, reglas []pricing.Regla) ListaResponse {
	resp := ListaResponse{
		ID:        lista.ID.String(),
		Nombre:    lista.Nombre,
		Activa:    lista.Activa,
		CreatedAt: lista.CreatedAt,
	}
	for _, r := range reglas {
		resp.Reglas = append(resp.Reglas, ReglaResponse{
			ID:             r.ID.String(),
			TipoProducto:   string(r.TipoProducto),
			MinCantidad:    r.MinCantidad,
			PrecioUnitario: r.PrecioUnitario,
		})
	}
	return resp
}

// ResolverPreciosRequest asks for unit prices for given quantities.
type ResolverPreciosRequest struct {
	CantidadAgua  int `json:"cantidadAgua"`
	CantidadCrema int `json:"cantidadCrema"`
}

// PreciosResponse carries resolved unit prices.
type PreciosResponse struct {
	PrecioAgua  decimal.Decimal `json:"precioAgua"`
	PrecioCrema decimal.Decimal `json:"precioCrema"`
}

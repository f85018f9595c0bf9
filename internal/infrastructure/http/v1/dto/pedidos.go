package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"heladero/internal/domain/orders"
)

// CrearPedidoRequest creates a new pedido. MontoTotalAgua/Crema are
// optional operator-entered totals; absent means compute from the
// active price list.
type CrearPedidoRequest struct {
	Direccion       string           `json:"direccion" binding:"required"`
	Telefono        string           `json:"telefono"`
	CantidadAgua    int              `json:"cantidadAgua"`
	CantidadCrema   int              `json:"cantidadCrema"`
	MetodoPago      string           `json:"metodoPago" binding:"required"`
	CostoEnvio      decimal.Decimal  `json:"costoEnvio"`
	Aclaracion      *string          `json:"aclaracion"`
	Observaciones   *string          `json:"observaciones"`
	MontoTotalAgua  *decimal.Decimal `json:"montoTotalAgua"`
	MontoTotalCrema *decimal.Decimal `json:"montoTotalCrema"`
}

// ToInput maps the request to the domain input.
func (r CrearPedidoRequest) ToInput() orders.CrearPedidoInput {
	return orders.CrearPedidoInput{
		Direccion:       r.Direccion,
		Telefono:        r.Telefono,
		CantidadAgua:    r.CantidadAgua,
		CantidadCrema:   r.CantidadCrema,
		MetodoPago:      orders.MetodoPago(r.MetodoPago),
		CostoEnvio:      r.CostoEnvio,
		Aclaracion:      r.Aclaracion,
		Observaciones:   r.Observaciones,
		MontoTotalAgua:  r.MontoTotalAgua,
		MontoTotalCrema: r.MontoTotalCrema,
	}
}

// EditarPedidoRequest is a full pedido edit.
type EditarPedidoRequest struct {
	Direccion       string           `json:"direccion" binding:"required"`
	Telefono        string           `json:"telefono"`
	CantidadAgua    int              `json:"cantidadAgua"`
	CantidadCrema   int              `json:"cantidadCrema"`
	MetodoPago      string           `json:"metodoPago" binding:"required"`
	Estado          string           `json:"estado" binding:"required"`
	Pagado          bool             `json:"pagado"`
	CostoEnvio      decimal.Decimal  `json:"costoEnvio"`
	Aclaracion      *string          `json:"aclaracion"`
	Observaciones   *string          `json:"observaciones"`
	MontoTotalAgua  *decimal.Decimal `json:"montoTotalAgua"`
	MontoTotalCrema *decimal.Decimal `json:"montoTotalCrema"`
}

// ToInput maps the request to the domain input.
func (r EditarPedidoRequest) ToInput() orders.EditarPedidoInput {
	return orders.EditarPedidoInput{
		Direccion:       r.Direccion,
		Telefono:        r.Telefono,
		CantidadAgua:    r.CantidadAgua,
		CantidadCrema:   r.CantidadCrema,
		MetodoPago:      orders.MetodoPago(r.MetodoPago),
		Estado:          orders.Estado(r.Estado),
		Pagado:          r.Pagado,
		CostoEnvio:      r.CostoEnvio,
		Aclaracion:      r.Aclaracion,
		Observaciones:   r.Observaciones,
		MontoTotalAgua:  r.MontoTotalAgua,
		MontoTotalCrema: r.MontoTotalCrema,
	}
}

// EstadoRequest sets one pedido's fulfillment state.
type EstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// PagadoRequest sets one pedido's payment flag.
type PagadoRequest struct {
	Pagado *bool `json:"pagado" binding:"required"`
}

// EnviadoRequest sets one pedido's message-sent flag.
type EnviadoRequest struct {
	Enviado *bool `json:"enviado" binding:"required"`
}

// CostoEnvioRequest sets one pedido's shipping cost.
type CostoEnvioRequest struct {
	CostoEnvio decimal.Decimal `json:"costoEnvio"`
}

// BulkEstadoRequest transitions many pedidos at once.
type BulkEstadoRequest struct {
	IDs    []string `json:"ids" binding:"required"`
	Estado string   `json:"estado" binding:"required"`
}

// BulkPagadoRequest flips the payment flag on many pedidos.
type BulkPagadoRequest struct {
	IDs    []string `json:"ids" binding:"required"`
	Pagado *bool    `json:"pagado" binding:"required"`
}

// BulkEnviadoRequest flips the message-sent flag on many pedidos.
type BulkEnviadoRequest struct {
	IDs     []string `json:"ids" binding:"required"`
	Enviado *bool    `json:"enviado" binding:"required"`
}

// PedidoResponse is one pedido.
type PedidoResponse struct {
	ID               string          `json:"id"`
	Direccion        string          `json:"direccion"`
	Telefono         string          `json:"telefono"`
	CantidadAgua     int             `json:"cantidadAgua"`
	CantidadCrema    int             `json:"cantidadCrema"`
	MetodoPago       string          `json:"metodoPago"`
	Estado           string          `json:"estado"`
	Pagado           bool            `json:"pagado"`
	Enviado          bool            `json:"enviado"`
	CostoEnvio       decimal.Decimal `json:"costoEnvio"`
	MontoTotalAgua   decimal.Decimal `json:"montoTotalAgua"`
	MontoAguaManual  bool            `json:"montoAguaManual"`
	MontoTotalCrema  decimal.Decimal `json:"montoTotalCrema"`
	MontoCremaManual bool            `json:"montoCremaManual"`
	Aclaracion       *string         `json:"aclaracion,omitempty"`
	Observaciones    *string         `json:"observaciones,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// FromPedido maps a domain pedido to a response.
func FromPedido(p *orders.Pedido) PedidoResponse {
	return PedidoResponse{
		ID:               p.ID.String(),
		Direccion:        p.Direccion,
		Telefono:         p.Telefono,
		CantidadAgua:     p.CantidadAgua,
		CantidadCrema:    p.CantidadCrema,
		MetodoPago:       string(p.MetodoPago),
		Estado:           string(p.Estado),
		Pagado:           p.Pagado,
		Enviado:          p.Enviado,
		CostoEnvio:       p.CostoEnvio,
		MontoTotalAgua:   p.MontoTotalAgua,
		MontoAguaManual:  p.MontoAguaManual,
		MontoTotalCrema:  p.MontoTotalCrema,
		MontoCremaManual: p.MontoCremaManual,
		Aclaracion:       p.Aclaracion,
		Observaciones:    p.Observaciones,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// FromPedidos maps a slice of pedidos to responses.
func FromPedidos(pedidos []orders.Pedido) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, FromPedido(&pedidos[i]))
	}
	return out
}

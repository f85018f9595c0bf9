// Package orders manages pedidos: customer delivery requests with
// per-product quantities, resolved or operator-overridden totals,
// payment method and fulfillment state. Pedidos are never physically
// deleted.
package orders

import (
	"time"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
)

// MetodoPago is the payment channel for an order.
type MetodoPago string

const (
	Efectivo      MetodoPago = "efectivo"
	Transferencia MetodoPago = "transferencia"
)

// Valido reports whether the payment method is a known value.
func (m MetodoPago) Valido() bool {
	return m == Efectivo || m == Transferencia
}

// Estado is the fulfillment state of an order.
type Estado string

const (
	Pendiente Estado = "pendiente"
	Enviado   Estado = "enviado"
	Cancelado Estado = "cancelado"
)

// Valido reports whether the state is a known value.
func (e Estado) Valido() bool {
	return e == Pendiente || e == Enviado || e == Cancelado
}

// Monto is a monetary total tagged with its provenance: computed from
// cantidad × precio unitario, or entered by hand. A manual total stays
// authoritative until the quantity behind it changes, at which point
// the total reverts to computed.
type Monto struct {
	Valor  types.Money `json:"valor"`
	Manual bool        `json:"manual"`
}

// Calculado builds a computed total.
func Calculado(v types.Money) Monto {
	return Monto{Valor: v}
}

// Ingresado builds an operator-entered total.
func Ingresado(v types.Money) Monto {
	return Monto{Valor: v, Manual: true}
}

// Pedido is a customer delivery request.
type Pedido struct {
	ID            id.ID      `db:"id" json:"id"`
	Direccion     string     `db:"direccion" json:"direccion"`
	Telefono      string     `db:"telefono" json:"telefono"`
	CantidadAgua  int        `db:"cantidad_agua" json:"cantidadAgua"`
	CantidadCrema int        `db:"cantidad_crema" json:"cantidadCrema"`
	MetodoPago    MetodoPago `db:"metodo_pago" json:"metodoPago"`
	Estado        Estado     `db:"estado" json:"estado"`
	Pagado        bool       `db:"pagado" json:"pagado"`

	// Enviado tracks whether the delivery message was sent, independent
	// of Estado.
	Enviado bool `db:"enviado" json:"enviado"`

	CostoEnvio types.Money `db:"costo_envio" json:"costoEnvio"`

	// Totals are persisted together with their manual flag so override
	// semantics survive reloads.
	MontoTotalAgua   types.Money `db:"monto_total_agua" json:"montoTotalAgua"`
	MontoAguaManual  bool        `db:"monto_agua_manual" json:"montoAguaManual"`
	MontoTotalCrema  types.Money `db:"monto_total_crema" json:"montoTotalCrema"`
	MontoCremaManual bool        `db:"monto_crema_manual" json:"montoCremaManual"`

	Aclaracion    *string `db:"aclaracion" json:"aclaracion,omitempty"`
	Observaciones *string `db:"observaciones" json:"observaciones,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// MontoAgua returns the agua total with its provenance.
func (p *Pedido) MontoAgua() Monto {
	return Monto{Valor: p.MontoTotalAgua, Manual: p.MontoAguaManual}
}

// MontoCrema returns the crema total with its provenance.
func (p *Pedido) MontoCrema() Monto {
	return Monto{Valor: p.MontoTotalCrema, Manual: p.MontoCremaManual}
}

// SetMontoAgua stores the agua total and its provenance.
func (p *Pedido) SetMontoAgua(m Monto) {
	p.MontoTotalAgua = m.Valor
	p.MontoAguaManual = m.Manual
}

// SetMontoCrema stores the crema total and its provenance.
func (p *Pedido) SetMontoCrema(m Monto) {
	p.MontoTotalCrema = m.Valor
	p.MontoCremaManual = m.Manual
}

// Validate checks order invariants.
func (p *Pedido) Validate() error {
	if p.Direccion == "" {
		return apperror.NewValidation("direccion is required")
	}
	if p.CantidadAgua < 0 || p.CantidadCrema < 0 {
		return apperror.NewValidation("cantidades must not be negative")
	}
	if p.CantidadAgua == 0 && p.CantidadCrema == 0 {
		return apperror.NewValidation("pedido must include at least one unit")
	}
	if !p.MetodoPago.Valido() {
		return apperror.NewValidation("metodo_pago must be efectivo or transferencia").
			WithDetail("metodo_pago", string(p.MetodoPago))
	}
	if !p.Estado.Valido() {
		return apperror.NewValidation("estado must be pendiente, enviado or cancelado").
			WithDetail("estado", string(p.Estado))
	}
	if p.CostoEnvio.IsNegative() {
		return apperror.NewValidation("costo_envio must not be negative")
	}
	return nil
}

// Filtro narrows order queries. Zero values mean "no restriction".
type Filtro struct {
	Desde      *time.Time
	Hasta      *time.Time
	Estado     *Estado
	Pagado     *bool
	MetodoPago *MetodoPago

	// Texto matches direccion or telefono, case-insensitive.
	Texto string
}

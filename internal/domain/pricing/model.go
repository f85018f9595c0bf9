// Package pricing provides quantity-tiered unit pricing: named price
// lists (listas de precios) holding threshold rules per product type,
// with exactly one list active at a time.
package pricing

import (
	"strings"
	"time"

	"heladero/internal/core/apperror"
	"heladero/internal/core/id"
	"heladero/internal/core/types"
)

// TipoProducto identifies one of the two product lines.
type TipoProducto string

const (
	// Agua is the water-based ice pop line.
	Agua TipoProducto = "agua"
	// Crema is the cream-based ice pop line.
	Crema TipoProducto = "crema"
)

// Valido reports whether the product type is a known value.
func (t TipoProducto) Valido() bool {
	return t == Agua || t == Crema
}

// Lista is a named, versioned price list. At most one list carries
// Activa=true; creation of a new list deactivates the previous ones.
type Lista struct {
	ID        id.ID     `db:"id" json:"id"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Activa    bool      `db:"activa" json:"activa"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NuevaLista creates an active list header with a generated ID.
func NuevaLista(nombre string) *Lista {
	return &Lista{
		ID:        id.New(),
		Nombre:    strings.TrimSpace(nombre),
		Activa:    true,
		CreatedAt: time.Now().UTC(),
	}
}

// Regla is one quantity threshold within a list: orders of at least
// MinCantidad units of TipoProducto pay PrecioUnitario per unit.
type Regla struct {
	ID             id.ID        `db:"id" json:"id"`
	ListaID        id.ID        `db:"lista_id" json:"listaId"`
	TipoProducto   TipoProducto `db:"tipo_producto" json:"tipoProducto"`
	MinCantidad    int          `db:"min_cantidad" json:"minCantidad"`
	PrecioUnitario types.Money  `db:"precio_unitario" json:"precioUnitario"`
}

// NuevaRegla is the operator input for one rule of a list under creation.
type NuevaRegla struct {
	TipoProducto   TipoProducto `json:"tipoProducto"`
	MinCantidad    int          `json:"minCantidad"`
	PrecioUnitario types.Money  `json:"precioUnitario"`
}

// Validar checks a single rule input.
func (r NuevaRegla) Validar() error {
	if !r.TipoProducto.Valido() {
		return apperror.NewValidation("tipo_producto must be agua or crema").
			WithDetail("tipo_producto", string(r.TipoProducto))
	}
	if r.MinCantidad < 0 {
		return apperror.NewValidation("min_cantidad must not be negative").
			WithDetail("min_cantidad", r.MinCantidad)
	}
	if r.PrecioUnitario.IsNegative() {
		return apperror.NewValidation("precio_unitario must not be negative").
			WithDetail("precio_unitario", r.PrecioUnitario)
	}
	return nil
}

// ValidarReglas checks a full rule set for a new list: at least one
// rule, each rule valid, and no duplicate (tipo_producto, min_cantidad).
func ValidarReglas(reglas []NuevaRegla) error {
	if len(reglas) == 0 {
		return apperror.NewValidation("at least one price rule is required")
	}
	type clave struct {
		tipo TipoProducto
		min  int
	}
	vistas := make(map[clave]struct{}, len(reglas))
	for _, r := range reglas {
		if err := r.Validar(); err != nil {
			return err
		}
		k := clave{r.TipoProducto, r.MinCantidad}
		if _, dup := vistas[k]; dup {
			return apperror.NewValidation("duplicate min_cantidad for product type").
				WithDetail("tipo_producto", string(r.TipoProducto)).
				WithDetail("min_cantidad", r.MinCantidad)
		}
		vistas[k] = struct{}{}
	}
	return nil
}

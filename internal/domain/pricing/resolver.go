package pricing

import (
	"sort"

	"heladero/internal/core/apperror"
	"heladero/internal/core/types"
)

// PreciosUnitarios are the resolved per-unit prices for one order.
type PreciosUnitarios struct {
	PrecioAgua  types.Money `json:"precioAgua"`
	PrecioCrema types.Money `json:"precioCrema"`
}

// ResolverPrecioUnitario selects the unit price for a quantity of one
// product type from the rules of a list ("at least N units" tiering).
//
// The highest threshold not exceeding the quantity wins. A quantity
// below every published threshold falls back to the lowest tier rather
// than $0. Quantity zero is priced at zero by convention without
// consulting rules. A rule set with no rules for the product type is
// an error, never a silent $0.
func ResolverPrecioUnitario(cantidad int, tipo TipoProducto, reglas []Regla) (types.Money, error) {
	if cantidad <= 0 {
		return types.Zero(), nil
	}

	delTipo := make([]Regla, 0, len(reglas))
	for _, r := range reglas {
		if r.TipoProducto == tipo {
			delTipo = append(delTipo, r)
		}
	}
	if len(delTipo) == 0 {
		return types.Zero(), apperror.NewNoRulesForProduct(string(tipo))
	}

	sort.Slice(delTipo, func(i, j int) bool {
		return delTipo[i].MinCantidad > delTipo[j].MinCantidad
	})

	for _, r := range delTipo {
		if r.MinCantidad <= cantidad {
			return r.PrecioUnitario, nil
		}
	}

	// Below every threshold: charge the entry-level tier.
	return delTipo[len(delTipo)-1].PrecioUnitario, nil
}

// CalcularPrecios resolves unit prices for both product types
// independently against one rule set.
func CalcularPrecios(cantidadAgua, cantidadCrema int, reglas []Regla) (PreciosUnitarios, error) {
	precioAgua, err := ResolverPrecioUnitario(cantidadAgua, Agua, reglas)
	if err != nil {
		return PreciosUnitarios{}, err
	}
	precioCrema, err := ResolverPrecioUnitario(cantidadCrema, Crema, reglas)
	if err != nil {
		return PreciosUnitarios{}, err
	}
	return PreciosUnitarios{PrecioAgua: precioAgua, PrecioCrema: precioCrema}, nil
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heladero/internal/core/apperror"
	"heladero/internal/core/types"
)

func reglasDePrueba() []Regla {
	return []Regla{
		{TipoProducto: Agua, MinCantidad: 0, PrecioUnitario: types.MustMoney("10")},
		{TipoProducto: Agua, MinCantidad: 50, PrecioUnitario: types.MustMoney("8")},
		{TipoProducto: Agua, MinCantidad: 200, PrecioUnitario: types.MustMoney("6")},
		{TipoProducto: Crema, MinCantidad: 0, PrecioUnitario: types.MustMoney("15")},
	}
}

func TestResolverPrecioUnitario_TierSelection(t *testing.T) {
	reglas := reglasDePrueba()

	tests := []struct {
		name     string
		cantidad int
		want     string
	}{
		{"lowest tier", 10, "10"},
		{"exactly at threshold", 50, "8"},
		{"just below next threshold", 199, "8"},
		{"highest tier", 500, "6"},
		{"exactly at highest threshold", 200, "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			precio, err := ResolverPrecioUnitario(tt.cantidad, Agua, reglas)
			require.NoError(t, err)
			assert.True(t, types.MustMoney(tt.want).Equal(precio),
				"expected %s, got %s", tt.want, precio)
		})
	}
}

func TestResolverPrecioUnitario_BelowMinimumFallsBackToLowestTier(t *testing.T) {
	reglas := []Regla{
		{TipoProducto: Agua, MinCantidad: 50, PrecioUnitario: types.MustMoney("8")},
	}

	precio, err := ResolverPrecioUnitario(10, Agua, reglas)
	require.NoError(t, err)
	assert.True(t, types.MustMoney("8").Equal(precio), "small orders pay the entry tier, not $0")
}

func TestResolverPrecioUnitario_ZeroQuantitySkipsRules(t *testing.T) {
	// No rules at all: quantity zero must not raise NO_RULES_FOR_PRODUCT.
	precio, err := ResolverPrecioUnitario(0, Agua, nil)
	require.NoError(t, err)
	assert.True(t, precio.IsZero())

	precio, err = ResolverPrecioUnitario(-3, Crema, nil)
	require.NoError(t, err)
	assert.True(t, precio.IsZero())
}

func TestResolverPrecioUnitario_NoRulesForProductType(t *testing.T) {
	reglas := []Regla{
		{TipoProducto: Agua, MinCantidad: 0, PrecioUnitario: types.MustMoney("10")},
	}

	_, err := ResolverPrecioUnitario(5, Crema, reglas)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNoRulesForProduct))
}

func TestCalcularPrecios_IndependentPerProductType(t *testing.T) {
	precios, err := CalcularPrecios(60, 3, reglasDePrueba())
	require.NoError(t, err)
	assert.True(t, types.MustMoney("8").Equal(precios.PrecioAgua))
	assert.True(t, types.MustMoney("15").Equal(precios.PrecioCrema))
}

func TestCalcularPrecios_ErrorOnMissingRulesWithPositiveQuantity(t *testing.T) {
	soloAgua := []Regla{
		{TipoProducto: Agua, MinCantidad: 0, PrecioUnitario: types.MustMoney("10")},
	}

	// Crema requested but no crema rules exist.
	_, err := CalcularPrecios(10, 5, soloAgua)
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeNoRulesForProduct))

	// Crema quantity zero: agua alone resolves fine.
	precios, err := CalcularPrecios(10, 0, soloAgua)
	require.NoError(t, err)
	assert.True(t, precios.PrecioCrema.IsZero())
}

package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pos/client"
)

func TestDemoProducts_CopiasIndependientes(t *testing.T) {
	a := client.DemoProducts()
	require.Len(t, a, 3)

	// Mutar el resultado no debe contaminar las lecturas siguientes.
	a[0].Name = "mutado"
	a[0].InitialQuantity = -1

	b := client.DemoProducts()
	assert.Equal(t, "Vaso desechable 200 ml (modo demostración)", b[0].Name)
	assert.Equal(t, 100, b[0].InitialQuantity)
}

func TestDemoCashCounts_TotalCuadraConDenominaciones(t *testing.T) {
	counts := client.DemoCashCounts()
	require.Len(t, counts, 1)

	// 2×5 + 5×10 + 10×5 + 20×3 + 50×1 = 220 en billetes,
	// 0.05×10 + 0.10×20 + 0.25×15 + 0.50×10 + 1.00×5 = 16.25 en monedas.
	assert.Equal(t, "236.25", counts[0].Total.String())
	assert.Equal(t, 0, counts[0].Notes["100"], "la denominación 100 aparece con cantidad cero")
}

func TestDemoInventoryCounts_CuadranConElCatalogo(t *testing.T) {
	products := client.DemoProducts()
	counts := client.DemoInventoryCounts()
	require.Len(t, counts, len(products))

	byEAN := make(map[string]int, len(counts))
	for _, c := range counts {
		byEAN[c.EANCode] = c.Quantity
	}
	for _, p := range products {
		assert.Equal(t, p.InitialQuantity, byEAN[p.EANCode],
			"el conteo demo de %s debe igualar su cantidad inicial", p.EANCode)
	}
}

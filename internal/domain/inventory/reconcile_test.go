package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/inventory"
)

// Sin cambio de cantidad no hay movimiento que registrar.
func TestReconcile_SinCambio_NoHayMovimiento(t *testing.T) {
	for _, q := range []int{0, 1, 10, 1000} {
		delta, err := inventory.Reconcile(q, q)
		require.NoError(t, err)
		assert.Nil(t, delta, "misma cantidad no debe producir movimiento")
	}
}

// Aumento de cantidad produce una entrada por la diferencia.
func TestReconcile_Aumento_ProduceEntrada(t *testing.T) {
	delta, err := inventory.Reconcile(3, 10)
	require.NoError(t, err)
	require.NotNil(t, delta)
	assert.Equal(t, entity.MovementEntrada, delta.Tipo)
	assert.Equal(t, 7, delta.Cantidad)
}

// Disminución de cantidad produce una salida por la diferencia.
func TestReconcile_Disminucion_ProduceSalida(t *testing.T) {
	delta, err := inventory.Reconcile(10, 4)
	require.NoError(t, err)
	require.NotNil(t, delta)
	assert.Equal(t, entity.MovementSalida, delta.Tipo)
	assert.Equal(t, 6, delta.Cantidad)
}

// Alta de artículo nuevo: anterior = 0.
func TestReconcile_AltaDeArticuloNuevo(t *testing.T) {
	delta, err := inventory.Reconcile(0, 10)
	require.NoError(t, err)
	require.NotNil(t, delta)
	assert.Equal(t, entity.MovementEntrada, delta.Tipo)
	assert.Equal(t, 10, delta.Cantidad)

	// Alta con cantidad 0 no registra nada.
	delta, err = inventory.Reconcile(0, 0)
	require.NoError(t, err)
	assert.Nil(t, delta)
}

// Borrado con existencias: nueva = 0, salida de cierre por todo el remanente.
func TestReconcile_BorradoConExistencias(t *testing.T) {
	delta, err := inventory.Reconcile(8, 0)
	require.NoError(t, err)
	require.NotNil(t, delta)
	assert.Equal(t, entity.MovementSalida, delta.Tipo)
	assert.Equal(t, 8, delta.Cantidad)
}

// Cantidades negativas violan el contrato y se rechazan.
func TestReconcile_CantidadNegativa_Rechazada(t *testing.T) {
	cases := [][2]int{{-1, 5}, {5, -1}, {-2, -3}}
	for _, c := range cases {
		_, err := inventory.Reconcile(c[0], c[1])
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "Reconcile(%d, %d)", c[0], c[1])
	}
}

// Propiedad: |a-b| es la magnitud y el tipo depende solo del orden de a y b.
// Idempotencia: dos llamadas con los mismos argumentos dan el mismo resultado.
func TestReconcile_PropiedadMagnitudYTipo(t *testing.T) {
	for a := 0; a <= 25; a++ {
		for b := 0; b <= 25; b++ {
			d1, err := inventory.Reconcile(a, b)
			require.NoError(t, err)
			d2, err := inventory.Reconcile(a, b)
			require.NoError(t, err)
			assert.Equal(t, d1, d2, "Reconcile debe ser determinista")

			if a == b {
				assert.Nil(t, d1)
				continue
			}
			require.NotNil(t, d1)
			abs := a - b
			if abs < 0 {
				abs = -abs
			}
			assert.Equal(t, abs, d1.Cantidad)
			if b > a {
				assert.Equal(t, entity.MovementEntrada, d1.Tipo)
			} else {
				assert.Equal(t, entity.MovementSalida, d1.Tipo)
			}
		}
	}
}

func TestApply_EntradaYSalida(t *testing.T) {
	q, err := inventory.Apply(10, entity.MovementEntrada, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, q)

	q, err = inventory.Apply(10, entity.MovementSalida, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, q)
}

func TestApply_SalidaMayorAlStock_Rechazada(t *testing.T) {
	_, err := inventory.Apply(3, entity.MovementSalida, 4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApply_EntradasInvalidas(t *testing.T) {
	_, err := inventory.Apply(3, entity.MovementEntrada, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = inventory.Apply(-1, entity.MovementEntrada, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = inventory.Apply(3, "ajuste", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Invariante del libro: q0 + Σ entradas − Σ salidas == cantidad final tras
// una secuencia de escrituras conciliadas.
func TestReconcile_InvarianteDelLibro(t *testing.T) {
	q := 10 // cantidad inicial
	entradas, salidas := 10, 0
	cambios := []int{10, 4, 4, 12, 0, 7}

	for _, nueva := range cambios {
		delta, err := inventory.Reconcile(q, nueva)
		require.NoError(t, err)
		if delta != nil {
			switch delta.Tipo {
			case entity.MovementEntrada:
				entradas += delta.Cantidad
			case entity.MovementSalida:
				salidas += delta.Cantidad
			}
		}
		q = nueva
	}

	assert.Equal(t, q, entradas-salidas,
		"la suma de entradas menos salidas debe igualar la cantidad actual")
}

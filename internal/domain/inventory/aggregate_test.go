package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/domain/inventory"
)

func mov(itemID, tipo string, cantidad int, fecha time.Time) *entity.Movement {
	return &entity.Movement{
		Item:     entity.ItemRef{ID: itemID},
		Tipo:     tipo,
		Cantidad: cantidad,
		Fecha:    fecha,
	}
}

func TestTotalsByItem(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{
		mov("a", entity.MovementEntrada, 10, base),
		mov("a", entity.MovementSalida, 4, base.Add(time.Hour)),
		mov("b", entity.MovementEntrada, 3, base),
	}

	totals := inventory.TotalsByItem(movs)
	require.Len(t, totals, 2)

	assert.Equal(t, "a", totals[0].ItemID)
	assert.Equal(t, 10, totals[0].Entradas)
	assert.Equal(t, 4, totals[0].Salidas)
	assert.Equal(t, 6, totals[0].Neto())

	assert.Equal(t, "b", totals[1].ItemID)
	assert.Equal(t, 3, totals[1].Neto())
}

func TestTotalsByDay(t *testing.T) {
	movs := []*entity.Movement{
		mov("a", entity.MovementEntrada, 5, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
		mov("a", entity.MovementSalida, 2, time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)),
		mov("a", entity.MovementSalida, 1, time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)),
	}

	days := inventory.TotalsByDay(movs)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-15", days[0].Periodo)
	assert.Equal(t, 5, days[0].Entradas)
	assert.Equal(t, 2, days[0].Salidas)
	assert.Equal(t, "2024-01-16", days[1].Periodo)
	assert.Equal(t, 1, days[1].Salidas)
}

func TestTotalsByWeek(t *testing.T) {
	// 2024-01-15 es lunes de la semana ISO 3; 2024-01-22 abre la semana 4.
	movs := []*entity.Movement{
		mov("a", entity.MovementEntrada, 5, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
		mov("a", entity.MovementEntrada, 2, time.Date(2024, 1, 19, 9, 0, 0, 0, time.UTC)),
		mov("a", entity.MovementSalida, 3, time.Date(2024, 1, 22, 9, 0, 0, 0, time.UTC)),
	}

	weeks := inventory.TotalsByWeek(movs)
	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-W03", weeks[0].Periodo)
	assert.Equal(t, 7, weeks[0].Entradas)
	assert.Equal(t, "2024-W04", weeks[1].Periodo)
	assert.Equal(t, 3, weeks[1].Salidas)
}

func TestTopSalidas(t *testing.T) {
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	movs := []*entity.Movement{
		mov("a", entity.MovementSalida, 5, base),
		mov("b", entity.MovementSalida, 9, base),
		mov("c", entity.MovementSalida, 2, base),
		mov("d", entity.MovementEntrada, 50, base), // sin salidas: fuera del top
	}

	top := inventory.TopSalidas(movs, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].ItemID)
	assert.Equal(t, 9, top[0].Salidas)
	assert.Equal(t, "a", top[1].ItemID)
}

func TestTopSalidas_EmpateDeterminista(t *testing.T) {
	base := time.Now()
	movs := []*entity.Movement{
		mov("z", entity.MovementSalida, 4, base),
		mov("a", entity.MovementSalida, 4, base),
	}

	top := inventory.TopSalidas(movs, 0)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].ItemID, "empates se ordenan por ItemID")
}

func TestAgregaciones_SinMovimientos(t *testing.T) {
	assert.Empty(t, inventory.TotalsByItem(nil))
	assert.Empty(t, inventory.TotalsByDay(nil))
	assert.Empty(t, inventory.TopSalidas(nil, 5))
}

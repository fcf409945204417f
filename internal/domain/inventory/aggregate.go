package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

// Agregaciones de solo lectura sobre una secuencia de movimientos. Son
// cómputo puro: el modelo de lectura se reconstruye por petición, nunca se
// cachea implícitamente.

// ItemTotal saldo neto de un artículo: Σ entradas − Σ salidas.
// Para un libro consistente debe coincidir con la cantidad actual del artículo.
type ItemTotal struct {
	ItemID   string
	Entradas int
	Salidas  int
}

// Neto devuelve entradas menos salidas.
func (t ItemTotal) Neto() int { return t.Entradas - t.Salidas }

// PeriodTotal entradas y salidas acumuladas en un periodo (día o semana ISO).
type PeriodTotal struct {
	Periodo  string // "2024-01-15" o "2024-W03"
	Entradas int
	Salidas  int
}

// TotalsByItem agrupa los movimientos por artículo, ordenado por ItemID.
func TotalsByItem(movs []*entity.Movement) []ItemTotal {
	acc := make(map[string]*ItemTotal)
	for _, m := range movs {
		t, ok := acc[m.Item.ID]
		if !ok {
			t = &ItemTotal{ItemID: m.Item.ID}
			acc[m.Item.ID] = t
		}
		switch m.Tipo {
		case entity.MovementEntrada:
			t.Entradas += m.Cantidad
		case entity.MovementSalida:
			t.Salidas += m.Cantidad
		}
	}
	out := make([]ItemTotal, 0, len(acc))
	for _, t := range acc {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// TotalsByDay agrupa por día calendario (fecha local del movimiento),
// ordenado cronológicamente.
func TotalsByDay(movs []*entity.Movement) []PeriodTotal {
	return totalsByPeriod(movs, func(t time.Time) string {
		return t.Format("2006-01-02")
	})
}

// TotalsByWeek agrupa por semana ISO 8601 ("2024-W03"), ordenado
// cronológicamente.
func TotalsByWeek(movs []*entity.Movement) []PeriodTotal {
	return totalsByPeriod(movs, isoWeekKey)
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func totalsByPeriod(movs []*entity.Movement, key func(time.Time) string) []PeriodTotal {
	acc := make(map[string]*PeriodTotal)
	for _, m := range movs {
		k := key(m.Fecha)
		t, ok := acc[k]
		if !ok {
			t = &PeriodTotal{Periodo: k}
			acc[k] = t
		}
		switch m.Tipo {
		case entity.MovementEntrada:
			t.Entradas += m.Cantidad
		case entity.MovementSalida:
			t.Salidas += m.Cantidad
		}
	}
	out := make([]PeriodTotal, 0, len(acc))
	for _, t := range acc {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Periodo < out[j].Periodo })
	return out
}

// TopSalidas devuelve los n artículos con mayor cantidad de salidas,
// ordenados de mayor a menor. Empates se resuelven por ItemID para que el
// resultado sea determinista.
func TopSalidas(movs []*entity.Movement, n int) []ItemTotal {
	totals := TotalsByItem(movs)
	conSalidas := totals[:0]
	for _, t := range totals {
		if t.Salidas > 0 {
			conSalidas = append(conSalidas, t)
		}
	}
	sort.Slice(conSalidas, func(i, j int) bool {
		if conSalidas[i].Salidas != conSalidas[j].Salidas {
			return conSalidas[i].Salidas > conSalidas[j].Salidas
		}
		return conSalidas[i].ItemID < conSalidas[j].ItemID
	})
	if n > 0 && len(conSalidas) > n {
		conSalidas = conSalidas[:n]
	}
	return conSalidas
}

// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovimientosRegistrados cuenta los asientos escritos en el libro,
	// por tipo (entrada|salida) y almacén.
	MovimientosRegistrados = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "movimientos_registrados_total",
		Help:      "Asientos escritos en el libro de movimientos.",
	}, []string{"tipo", "almacen"})

	// ConflictosConcurrencia cuenta las escrituras rechazadas por versión
	// desfasada.
	ConflictosConcurrencia = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "conflictos_concurrencia_total",
		Help:      "Escrituras de artículo rechazadas por modificación concurrente.",
	})

	// GuiasAtrasadas cuenta las guías marcadas como atrasadas por el barrido.
	GuiasAtrasadas = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "guias_atrasadas_total",
		Help:      "Guías marcadas como atrasadas por el barrido diario.",
	})
)

package inventory

import (
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

// Delta es el movimiento implícito por un cambio de cantidad: tipo cerrado
// entrada/salida y magnitud siempre positiva. Un Delta nil significa que no
// hay movimiento que registrar.
type Delta struct {
	Tipo     string
	Cantidad int
}

// Reconcile deriva el movimiento que implica pasar de la cantidad anterior a
// la nueva (regla de conciliación del libro de inventario):
//
//	anterior == nueva  -> nil (sin movimiento)
//	nueva > anterior   -> entrada por (nueva - anterior)
//	nueva < anterior   -> salida por (anterior - nueva)
//
// Es una función pura: sin I/O, determinista. Cantidades negativas violan el
// contrato del caller y se rechazan con ErrInvalidQuantity en lugar de
// producir magnitudes negativas silenciosas.
//
// Alta de un artículo nuevo con cantidad q equivale a Reconcile(0, q); baja
// definitiva (borrado) equivale a Reconcile(q, 0) y debe registrarse ANTES de
// eliminar el registro del artículo.
func Reconcile(anterior, nueva int) (*Delta, error) {
	if anterior < 0 || nueva < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	switch {
	case nueva > anterior:
		return &Delta{Tipo: entity.MovementEntrada, Cantidad: nueva - anterior}, nil
	case nueva < anterior:
		return &Delta{Tipo: entity.MovementSalida, Cantidad: anterior - nueva}, nil
	default:
		return nil, nil
	}
}

// Apply devuelve la cantidad resultante de aplicar un movimiento a la
// cantidad actual. Es la inversa de Reconcile; una salida mayor al stock
// actual retorna ErrInsufficientStock.
func Apply(actual int, tipo string, cantidad int) (int, error) {
	if actual < 0 || cantidad <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	switch tipo {
	case entity.MovementEntrada:
		return actual + cantidad, nil
	case entity.MovementSalida:
		if cantidad > actual {
			return 0, domain.ErrInsufficientStock
		}
		return actual - cantidad, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	appinv "github.com/tiservices/backoffice-api/internal/application/inventory"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
)

func newSolicitudFixture() (*appinv.SolicitudUseCase, *appinv.ItemUseCase, *fakeItemRepo, *fakeMovementRepo, *fakeSolicitudRepo) {
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	solRepo := newFakeSolicitudRepo()
	tx := &fakeTxRunner{itemRepo: itemRepo, movRepo: movRepo, solRepo: solRepo}
	return appinv.NewSolicitudUseCase(tx, solRepo, itemRepo),
		appinv.NewItemUseCase(tx, itemRepo), itemRepo, movRepo, solRepo
}

func solicitudReq(itemID, tipo string, cantidad int) dto.CreateSolicitudRequest {
	return dto.CreateSolicitudRequest{
		ItemID:   itemID,
		Tipo:     tipo,
		Cantidad: cantidad,
		Motivo:   "instalación sucursal sur",
	}
}

func TestSolicitudCrear_QuedaPendiente(t *testing.T) {
	solUC, itemUC, _, _, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Cámara PTZ", 5), "")
	require.NoError(t, err)

	resp, err := solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 3), "cristian")
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudPendiente, resp.Estado)
	assert.Equal(t, "cristian", resp.Solicitante)
	assert.Empty(t, resp.Aprobador)
	require.NotNil(t, resp.Item)
	assert.Equal(t, "Cámara PTZ", resp.Item.Descripcion)
}

func TestSolicitudCrear_EntradaInvalida(t *testing.T) {
	solUC, itemUC, _, _, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Switch PoE", 2), "")
	require.NoError(t, err)

	in := solicitudReq(item.ID, entity.MovementEntrada, 1)
	in.Motivo = ""
	_, err = solUC.Crear(context.Background(), entity.AlmacenInterior, in, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, "traspaso", 1), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementEntrada, 0), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// El artículo debe existir en el almacén de la ruta.
	_, err = solUC.Crear(context.Background(), entity.AlmacenExterior,
		solicitudReq(item.ID, entity.MovementEntrada, 1), "x")
	assert.ErrorIs(t, err, domain.ErrDanglingReference)
}

// Una salida mayor al stock actual ni siquiera llega a pendiente.
func TestSolicitudCrear_SalidaSinStock_Rechazada(t *testing.T) {
	solUC, itemUC, _, _, solRepo := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("NVR 16ch", 2), "")
	require.NoError(t, err)

	_, err = solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 3), "x")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, solRepo.sols)
}

// Aprobar una salida descuenta existencias, retira las series pedidas y
// escribe el asiento en el libro, todo en la misma transacción.
func TestSolicitudAprobar_SalidaAplicaYRegistraAsiento(t *testing.T) {
	solUC, itemUC, itemRepo, movRepo, _ := newSolicitudFixture()
	in := saveReq("Radio enlace", 4)
	in.NumerosSerie = []string{"S1", "S2", "S3", "S4"}
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, in, "")
	require.NoError(t, err)

	req := solicitudReq(item.ID, entity.MovementSalida, 2)
	req.NumerosSerie = []string{"S1", "S3"}
	sol, err := solUC.Crear(context.Background(), entity.AlmacenInterior, req, "paola")
	require.NoError(t, err)

	resp, err := solUC.Aprobar(context.Background(), entity.AlmacenInterior, sol.ID, "cristian")
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudAprobada, resp.Estado)
	assert.Equal(t, "cristian", resp.Aprobador)
	require.NotNil(t, resp.FechaProceso)

	cur, _ := itemRepo.GetByID(item.ID)
	assert.Equal(t, 2, cur.Cantidad)
	assert.ElementsMatch(t, []string{"S2", "S4"}, cur.NumerosSerie)

	require.Len(t, movRepo.movs, 2) // entrada inicial + salida aprobada
	mov := movRepo.movs[1]
	assert.Equal(t, entity.MovementSalida, mov.Tipo)
	assert.Equal(t, 2, mov.Cantidad)
	assert.Equal(t, "instalación sucursal sur", mov.Comentario)
	assert.Equal(t, "paola", mov.Usuario) // el asiento lleva al solicitante
}

func TestSolicitudAprobar_EntradaSumaSeries(t *testing.T) {
	solUC, itemUC, itemRepo, movRepo, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Cámara domo", 1), "")
	require.NoError(t, err)

	req := solicitudReq(item.ID, entity.MovementEntrada, 2)
	req.NumerosSerie = []string{"N1", "N2"}
	sol, err := solUC.Crear(context.Background(), entity.AlmacenInterior, req, "x")
	require.NoError(t, err)

	_, err = solUC.Aprobar(context.Background(), entity.AlmacenInterior, sol.ID, "admin")
	require.NoError(t, err)

	cur, _ := itemRepo.GetByID(item.ID)
	assert.Equal(t, 3, cur.Cantidad)
	assert.ElementsMatch(t, []string{"N1", "N2"}, cur.NumerosSerie)
	require.Len(t, movRepo.movs, 2)
	assert.Equal(t, entity.MovementEntrada, movRepo.movs[1].Tipo)
}

// El stock pudo bajar entre la solicitud y la aprobación: la aprobación
// revalida y, si ya no alcanza, todo se revierte y la solicitud sigue
// pendiente.
func TestSolicitudAprobar_StockCambio_RollbackSiguePendiente(t *testing.T) {
	solUC, itemUC, itemRepo, movRepo, solRepo := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("UPS 1500VA", 5), "")
	require.NoError(t, err)

	sol, err := solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 4), "x")
	require.NoError(t, err)

	// Mientras la solicitud esperaba, alguien retiró 3.
	_, err = itemUC.Baja(context.Background(), entity.AlmacenInterior, item.ID,
		dto.AltaBajaRequest{Cantidad: 3}, "")
	require.NoError(t, err)

	_, err = solUC.Aprobar(context.Background(), entity.AlmacenInterior, sol.ID, "admin")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cur, _ := itemRepo.GetByID(item.ID)
	assert.Equal(t, 2, cur.Cantidad)
	assert.Len(t, movRepo.movs, 2) // entrada inicial + baja; nada de la aprobación
	pend, _ := solRepo.GetByID(sol.ID)
	assert.Equal(t, entity.SolicitudPendiente, pend.Estado)
}

// Una solicitud ya procesada no se puede aprobar ni rechazar otra vez.
func TestSolicitudAprobar_YaProcesada_Rechazada(t *testing.T) {
	solUC, itemUC, _, movRepo, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Gabinete", 3), "")
	require.NoError(t, err)

	sol, err := solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 1), "x")
	require.NoError(t, err)
	_, err = solUC.Aprobar(context.Background(), entity.AlmacenInterior, sol.ID, "admin")
	require.NoError(t, err)

	_, err = solUC.Aprobar(context.Background(), entity.AlmacenInterior, sol.ID, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = solUC.Rechazar(context.Background(), entity.AlmacenInterior, sol.ID, "admin", "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, movRepo.movs, 2) // no hay asiento duplicado
}

func TestSolicitudAprobar_AlmacenEquivocado_NotFound(t *testing.T) {
	solUC, itemUC, _, _, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Patch panel", 2), "")
	require.NoError(t, err)

	sol, err := solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementEntrada, 1), "x")
	require.NoError(t, err)

	_, err = solUC.Aprobar(context.Background(), entity.AlmacenExterior, sol.ID, "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Rechazar guarda motivo y aprobador sin tocar artículo ni libro.
func TestSolicitudRechazar_NoTocaElLibro(t *testing.T) {
	solUC, itemUC, itemRepo, movRepo, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Antena", 4), "")
	require.NoError(t, err)

	sol, err := solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 2), "paola")
	require.NoError(t, err)

	resp, err := solUC.Rechazar(context.Background(), entity.AlmacenInterior, sol.ID, "cristian", "sin presupuesto")
	require.NoError(t, err)
	assert.Equal(t, entity.SolicitudRechazada, resp.Estado)
	assert.Equal(t, "sin presupuesto", resp.MotivoRechazo)
	assert.Equal(t, "cristian", resp.Aprobador)

	cur, _ := itemRepo.GetByID(item.ID)
	assert.Equal(t, 4, cur.Cantidad)
	assert.Len(t, movRepo.movs, 1) // solo la entrada inicial
}

func TestSolicitudListados_PendientesYMias(t *testing.T) {
	solUC, itemUC, _, _, _ := newSolicitudFixture()
	item, err := itemUC.Create(context.Background(), entity.AlmacenInterior, saveReq("Cable cat6", 10), "")
	require.NoError(t, err)

	s1, err := solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 1), "paola")
	require.NoError(t, err)
	_, err = solUC.Crear(context.Background(), entity.AlmacenInterior,
		solicitudReq(item.ID, entity.MovementSalida, 2), "cristian")
	require.NoError(t, err)
	_, err = solUC.Rechazar(context.Background(), entity.AlmacenInterior, s1.ID, "admin", "duplicada")
	require.NoError(t, err)

	pend, err := solUC.Pendientes(entity.AlmacenInterior, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, pend.Items, 1)
	assert.Equal(t, "cristian", pend.Items[0].Solicitante)

	mias, err := solUC.Mias(entity.AlmacenInterior, "paola", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, mias.Items, 1)
	assert.Equal(t, entity.SolicitudRechazada, mias.Items[0].Estado)

	// Los almacenes no se mezclan.
	vacio, err := solUC.Pendientes(entity.AlmacenExterior, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, vacio.Items)
}

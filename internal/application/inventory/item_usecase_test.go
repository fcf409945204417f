package inventory_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	appinv "github.com/tiservices/backoffice-api/internal/application/inventory"
	"github.com/tiservices/backoffice-api/internal/domain"
	"github.com/tiservices/backoffice-api/internal/domain/entity"
	"github.com/tiservices/backoffice-api/internal/infrastructure/metrics"
)

func newItemFixture() (*appinv.ItemUseCase, *fakeItemRepo, *fakeMovementRepo) {
	itemRepo := newFakeItemRepo()
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{itemRepo: itemRepo, movRepo: movRepo, solRepo: newFakeSolicitudRepo()}
	return appinv.NewItemUseCase(tx, itemRepo), itemRepo, movRepo
}

func saveReq(descripcion string, cantidad int) dto.SaveItemRequest {
	return dto.SaveItemRequest{
		Descripcion:    descripcion,
		Marca:          "Hikvision",
		Modelo:         "DS-2CD1023",
		Proveedor:      "TVC",
		Unidad:         entity.UnidadPieza,
		PrecioUnitario: decimal.NewFromInt(850),
		Cantidad:       cantidad,
	}
}

// Alta de artículo con cantidad 10 → una entrada por 10 en el mismo commit.
func TestItemCreate_ConExistencias_RegistraEntradaInicial(t *testing.T) {
	uc, _, movRepo := newItemFixture()

	resp, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Cámara bala", 10), "cristian")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 10, resp.Cantidad)

	require.Len(t, movRepo.movs, 1)
	mov := movRepo.movs[0]
	assert.Equal(t, entity.MovementEntrada, mov.Tipo)
	assert.Equal(t, 10, mov.Cantidad)
	assert.Equal(t, resp.ID, mov.Item.ID)
	assert.Equal(t, "cristian", mov.Usuario)
	require.NotNil(t, mov.Item.Snapshot)
	assert.Equal(t, "Cámara bala", mov.Item.Snapshot.Descripcion)
}

// Alta con cantidad 0 no toca el libro.
func TestItemCreate_SinExistencias_NoRegistraMovimiento(t *testing.T) {
	uc, _, movRepo := newItemFixture()

	_, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Conector RJ45", 0), "")
	require.NoError(t, err)
	assert.Empty(t, movRepo.movs)
}

func TestItemCreate_EntradaInvalida(t *testing.T) {
	uc, _, _ := newItemFixture()

	in := saveReq("", 5)
	_, err := uc.Create(context.Background(), entity.AlmacenInterior, in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = saveReq("Cable UTP", -1)
	_, err = uc.Create(context.Background(), entity.AlmacenInterior, in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	in = saveReq("Cable UTP", 5)
	in.Unidad = "CAJA"
	_, err = uc.Create(context.Background(), entity.AlmacenInterior, in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Edición de 10 a 4 → una salida por 6.
func TestItemUpdate_CantidadBaja_RegistraSalida(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Switch 8p", 10), "")
	require.NoError(t, err)

	in := saveReq("Switch 8p", 4)
	in.Version = created.Version
	resp, err := uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in, "paola")
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Cantidad)

	require.Len(t, movRepo.movs, 2) // entrada inicial + salida por edición
	salida := movRepo.movs[1]
	assert.Equal(t, entity.MovementSalida, salida.Tipo)
	assert.Equal(t, 6, salida.Cantidad)
	assert.Equal(t, "paola", salida.Usuario)
}

// Edición sin cambio de cantidad deja el libro intacto.
func TestItemUpdate_SinCambioDeCantidad_LibroIntacto(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Rack 12U", 10), "")
	require.NoError(t, err)

	in := saveReq("Rack 12U (abierto)", 10)
	in.Version = created.Version
	_, err = uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in, "")
	require.NoError(t, err)

	assert.Len(t, movRepo.movs, 1, "solo debe existir la entrada inicial")
}

// Version desfasada → conflicto de modificación concurrente, sin efectos.
func TestItemUpdate_VersionDesfasada_Conflicto(t *testing.T) {
	uc, itemRepo, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Fuente 12V", 5), "")
	require.NoError(t, err)

	// Primer editor gana.
	in := saveReq("Fuente 12V", 8)
	in.Version = created.Version
	_, err = uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in, "a")
	require.NoError(t, err)

	// Segundo editor llega con la versión vieja.
	in2 := saveReq("Fuente 12V", 2)
	in2.Version = created.Version
	_, err = uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in2, "b")
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)

	// El estado del primer editor sobrevive y no hay asiento fantasma.
	cur, _ := itemRepo.GetByID(created.ID)
	assert.Equal(t, 8, cur.Cantidad)
	assert.Len(t, movRepo.movs, 2)
}

// El almacén exterior concilia igual que el interior (misma ruta de código).
func TestItemUpdate_AlmacenExterior_TambienConcilia(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenExterior, saveReq("Antena sectorial", 6), "")
	require.NoError(t, err)

	in := saveReq("Antena sectorial", 2)
	in.Version = created.Version
	_, err = uc.Update(context.Background(), entity.AlmacenExterior, created.ID, in, "")
	require.NoError(t, err)

	require.Len(t, movRepo.movs, 2)
	assert.Equal(t, entity.AlmacenExterior, movRepo.movs[1].Almacen)
	assert.Equal(t, entity.MovementSalida, movRepo.movs[1].Tipo)
}

// Borrado con existencias → salida de cierre registrada antes del DELETE,
// con instantánea denormalizada.
func TestItemDelete_ConExistencias_SalidaDeCierre(t *testing.T) {
	uc, itemRepo, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("NVR 8ch", 3), "")
	require.NoError(t, err)

	err = uc.Delete(context.Background(), entity.AlmacenInterior, created.ID, "cristian")
	require.NoError(t, err)

	gone, _ := itemRepo.GetByID(created.ID)
	assert.Nil(t, gone)

	require.Len(t, movRepo.movs, 2)
	cierre := movRepo.movs[1]
	assert.Equal(t, entity.MovementSalida, cierre.Tipo)
	assert.Equal(t, 3, cierre.Cantidad)
	require.NotNil(t, cierre.Item.Snapshot)
	assert.Equal(t, "NVR 8ch", cierre.Item.Snapshot.Descripcion)
}

func TestItemDelete_SinExistencias_SinMovimiento(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Caja vacía", 0), "")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), entity.AlmacenInterior, created.ID, ""))
	assert.Empty(t, movRepo.movs)
}

func TestItemDelete_AlmacenEquivocado_NotFound(t *testing.T) {
	uc, _, _ := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Patch panel", 2), "")
	require.NoError(t, err)

	err = uc.Delete(context.Background(), entity.AlmacenExterior, created.ID, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemAlta_SumaYRegistraEntradaConComentario(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Cable UTP cat6", 10), "")
	require.NoError(t, err)

	resp, err := uc.Alta(context.Background(), entity.AlmacenInterior, created.ID,
		dto.AltaBajaRequest{Cantidad: 5, Comentario: "recepción guía 774"}, "paola")
	require.NoError(t, err)
	assert.Equal(t, 15, resp.Cantidad)

	require.Len(t, movRepo.movs, 2)
	alta := movRepo.movs[1]
	assert.Equal(t, entity.MovementEntrada, alta.Tipo)
	assert.Equal(t, 5, alta.Cantidad)
	assert.Equal(t, "recepción guía 774", alta.Comentario)
}

func TestItemBaja_RestaYRegistraSalida(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Conector BNC", 10), "")
	require.NoError(t, err)

	resp, err := uc.Baja(context.Background(), entity.AlmacenInterior, created.ID,
		dto.AltaBajaRequest{Cantidad: 4, Comentario: "proyecto plaza norte"}, "")
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Cantidad)
	assert.Equal(t, entity.MovementSalida, movRepo.movs[1].Tipo)
}

// Baja mayor al stock se rechaza y la transacción se revierte completa.
func TestItemBaja_StockInsuficiente_Rollback(t *testing.T) {
	uc, itemRepo, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("UPS 1000VA", 3), "")
	require.NoError(t, err)

	_, err = uc.Baja(context.Background(), entity.AlmacenInterior, created.ID,
		dto.AltaBajaRequest{Cantidad: 4}, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cur, _ := itemRepo.GetByID(created.ID)
	assert.Equal(t, 3, cur.Cantidad)
	assert.Len(t, movRepo.movs, 1)
}

func TestItemBaja_CantidadNoPositiva_Rechazada(t *testing.T) {
	uc, _, _ := newItemFixture()
	_, err := uc.Baja(context.Background(), entity.AlmacenInterior, "x", dto.AltaBajaRequest{Cantidad: 0}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// Invariante del libro tras una secuencia de escrituras conciliadas:
// q0 + Σ entradas − Σ salidas == cantidad actual.
func TestItem_InvarianteDelLibroTrasSecuencia(t *testing.T) {
	uc, itemRepo, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Cámara domo", 10), "")
	require.NoError(t, err)

	id := created.ID
	version := created.Version

	edit := func(cantidad int) {
		in := saveReq("Cámara domo", cantidad)
		in.Version = version
		resp, err := uc.Update(context.Background(), entity.AlmacenInterior, id, in, "")
		require.NoError(t, err)
		version = resp.Version
	}
	edit(4)
	edit(4) // sin cambio: no registra
	edit(12)
	_, err = uc.Alta(context.Background(), entity.AlmacenInterior, id, dto.AltaBajaRequest{Cantidad: 3}, "")
	require.NoError(t, err)
	cur, _ := itemRepo.GetByID(id)
	version = cur.Version
	_, err = uc.Baja(context.Background(), entity.AlmacenInterior, id, dto.AltaBajaRequest{Cantidad: 7}, "")
	require.NoError(t, err)

	entradas, salidas := 0, 0
	for _, m := range movRepo.movs {
		switch m.Tipo {
		case entity.MovementEntrada:
			entradas += m.Cantidad
		case entity.MovementSalida:
			salidas += m.Cantidad
		}
	}
	cur, _ = itemRepo.GetByID(id)
	assert.Equal(t, cur.Cantidad, entradas-salidas)
}

// Sin versión no hay conciliación posible: el PUT se rechaza en vez de caer
// a último-escritor-gana.
func TestItemUpdate_SinVersion_Rechazada(t *testing.T) {
	uc, itemRepo, movRepo := newItemFixture()
	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Sensor PIR", 7), "")
	require.NoError(t, err)

	in := saveReq("Sensor PIR", 2) // Version queda en 0
	_, err = uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cur, _ := itemRepo.GetByID(created.ID)
	assert.Equal(t, 7, cur.Cantidad)
	assert.Len(t, movRepo.movs, 1)
}

// Todo asiento del libro cuenta en la métrica, venga de donde venga: la
// edición que concilia y la salida de cierre del borrado incluidas.
func TestItem_MetricaCuentaTodosLosAsientos(t *testing.T) {
	uc, _, movRepo := newItemFixture()
	entradas := metrics.MovimientosRegistrados.WithLabelValues(entity.MovementEntrada, entity.AlmacenInterior)
	salidas := metrics.MovimientosRegistrados.WithLabelValues(entity.MovementSalida, entity.AlmacenInterior)
	e0 := testutil.ToFloat64(entradas)
	s0 := testutil.ToFloat64(salidas)

	created, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Lector biométrico", 5), "")
	require.NoError(t, err)
	assert.Equal(t, e0+1, testutil.ToFloat64(entradas))

	// PUT que baja la cantidad: salida derivada.
	in := saveReq("Lector biométrico", 3)
	in.Version = created.Version
	resp, err := uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in, "")
	require.NoError(t, err)
	assert.Equal(t, s0+1, testutil.ToFloat64(salidas))

	// PUT sin cambio de cantidad no infla la métrica.
	in = saveReq("Lector biométrico (caja abierta)", 3)
	in.Version = resp.Version
	_, err = uc.Update(context.Background(), entity.AlmacenInterior, created.ID, in, "")
	require.NoError(t, err)
	assert.Equal(t, s0+1, testutil.ToFloat64(salidas))

	// DELETE con existencias: salida de cierre.
	require.NoError(t, uc.Delete(context.Background(), entity.AlmacenInterior, created.ID, ""))
	assert.Equal(t, s0+2, testutil.ToFloat64(salidas))

	// La métrica y el libro avanzan juntos.
	assert.Len(t, movRepo.movs, 3)
}

// Búsqueda insensible a acentos sobre descripción/marca/modelo/proveedor.
func TestItemList_BusquedaSinAcentos(t *testing.T) {
	uc, _, _ := newItemFixture()
	_, err := uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Cámara túnel", 1), "")
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), entity.AlmacenInterior, saveReq("Switch PoE", 1), "")
	require.NoError(t, err)

	resp, err := uc.List(entity.AlmacenInterior, "camara", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Cámara túnel", resp.Items[0].Descripcion)

	resp, err = uc.List(entity.AlmacenInterior, "tÚnel", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)

	// Los almacenes no se mezclan en el listado.
	resp, err = uc.List(entity.AlmacenExterior, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

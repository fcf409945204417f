package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/application/inventory"
	"github.com/tiservices/backoffice-api/internal/domain/repository"
)

// MovementHandler maneja el libro de movimientos de un almacén. Se monta dos
// veces: interior y exterior.
type MovementHandler struct {
	uc      *inventory.MovementUseCase
	almacen string
}

// NewMovementHandler construye el handler para un almacén.
func NewMovementHandler(uc *inventory.MovementUseCase, almacen string) *MovementHandler {
	return &MovementHandler{uc: uc, almacen: almacen}
}

// Register godoc
// @Summary      Registrar movimiento manual (aplica el cambio al artículo en la misma transacción)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory-movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), h.almacen, in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consultar el libro de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        itemId    query  string  false  "Filtrar por artículo"
// @Param        desde     query  string  false  "Inicio del rango (inclusivo, RFC3339 o YYYY-MM-DD)"
// @Param        hasta     query  string  false  "Fin del rango (inclusivo)"
// @Param        populate  query  bool    false  "Incluir identidad del artículo"
// @Param        limit     query  int     false  "Límite"
// @Param        offset    query  int     false  "Offset"
// @Success      200       {object}  dto.MovementListResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/inventory-movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	desde, hasta, err := parseRango(c)
	if err != nil {
		return respondError(c, err)
	}
	filter := repository.MovementFilter{
		ItemID:   c.Query("itemId"),
		Desde:    desde,
		Hasta:    hasta,
		Populate: c.QueryBool("populate", false),
		Limit:    c.QueryInt("limit", 0),
		Offset:   c.QueryInt("offset", 0),
	}
	out, err := h.uc.Query(h.almacen, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Agregados del libro: saldos por artículo, totales por día y semana, top salidas
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Inicio del rango (inclusivo)"
// @Param        hasta  query  string  false  "Fin del rango (inclusivo)"
// @Param        top    query  int     false  "Tamaño del top de salidas"  default(5)
// @Success      200    {object}  dto.MovementSummaryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/resumen [get]
func (h *MovementHandler) Resumen(c *fiber.Ctx) error {
	desde, hasta, err := parseRango(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Resumen(h.almacen, desde, hasta, c.QueryInt("top", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar movimientos del rango a xlsx
// @Tags         movements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        desde  query  string  false  "Inicio del rango (inclusivo)"
// @Param        hasta  query  string  false  "Fin del rango (inclusivo)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory-movements/export [get]
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	desde, hasta, err := parseRango(c)
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.uc.Export(h.almacen, desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xlsx"`)
	return c.Send(data)
}

// parseRango lee desde/hasta del query string. Acepta RFC3339 o fecha simple
// YYYY-MM-DD; una fecha simple en hasta cubre el día completo.
func parseRango(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	desde, err := parseFecha(c.Query("desde"), false)
	if err != nil {
		return nil, nil, err
	}
	hasta, err := parseFecha(c.Query("hasta"), true)
	if err != nil {
		return nil, nil, err
	}
	return desde, hasta, nil
}

func parseFecha(s string, finDeDia bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, errInvalidFecha
	}
	if finDeDia {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/application/inventory"
)

// SolicitudHandler maneja las peticiones HTTP de solicitudes de movimiento.
// Como el de artículos, se monta una vez por almacén.
type SolicitudHandler struct {
	uc      *inventory.SolicitudUseCase
	almacen string
}

// NewSolicitudHandler construye el handler para un almacén.
func NewSolicitudHandler(uc *inventory.SolicitudUseCase, almacen string) *SolicitudHandler {
	return &SolicitudHandler{uc: uc, almacen: almacen}
}

// Create godoc
// @Summary      Solicitar un movimiento de inventario
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolicitudRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.SolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), h.almacen, in, GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Mias godoc
// @Summary      Listar mis solicitudes
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SolicitudListResponse
// @Router       /api/solicitudes/mias [get]
func (h *SolicitudHandler) Mias(c *fiber.Ctx) error {
	out, err := h.uc.Mias(h.almacen, GetUserName(c), dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pendientes godoc
// @Summary      Listar solicitudes pendientes (solo admin)
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SolicitudListResponse
// @Router       /api/solicitudes/pendientes [get]
func (h *SolicitudHandler) Pendientes(c *fiber.Ctx) error {
	out, err := h.uc.Pendientes(h.almacen, dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar una solicitud pendiente (solo admin)
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/aprobar [post]
func (h *SolicitudHandler) Aprobar(c *fiber.Ctx) error {
	out, err := h.uc.Aprobar(c.Context(), h.almacen, c.Params("id"), GetUserName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rechazar godoc
// @Summary      Rechazar una solicitud pendiente (solo admin)
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.RechazarSolicitudRequest  true  "Motivo del rechazo"
// @Success      200   {object}  dto.SolicitudResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/rechazar [post]
func (h *SolicitudHandler) Rechazar(c *fiber.Ctx) error {
	var in dto.RechazarSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Rechazar(c.Context(), h.almacen, c.Params("id"), GetUserName(c), in.MotivoRechazo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

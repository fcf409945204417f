package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/application/usecase"
	"github.com/tiservices/backoffice-api/internal/infrastructure/metrics"
)

// GuiaHandler maneja las peticiones HTTP para guías de paquetería.
type GuiaHandler struct {
	uc *usecase.GuiaUseCase
}

// NewGuiaHandler construye el handler.
func NewGuiaHandler(uc *usecase.GuiaUseCase) *GuiaHandler {
	return &GuiaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar guía
// @Tags         guias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveGuiaRequest  true  "Datos de la guía"
// @Success      201   {object}  dto.GuiaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/guias [post]
func (h *GuiaHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveGuiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener guía por ID
// @Tags         guias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la guía"
// @Success      200  {object}  dto.GuiaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guias/{id} [get]
func (h *GuiaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar guías
// @Tags         guias
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.GuiaListResponse
// @Router       /api/guias [get]
func (h *GuiaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar guía (incluye cambio de estado)
// @Tags         guias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la guía"
// @Param        body  body  dto.SaveGuiaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.GuiaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/guias/{id} [put]
func (h *GuiaHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveGuiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar guía
// @Tags         guias
// @Security     Bearer
// @Param        id  path  string  true  "ID de la guía"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/guias/{id} [delete]
func (h *GuiaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sweep godoc
// @Summary      Disparar manualmente el barrido de guías atrasadas
// @Tags         guias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/guias/sweep [post]
func (h *GuiaHandler) Sweep(c *fiber.Ctx) error {
	n, err := h.uc.SweepAtrasadas(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	metrics.GuiasAtrasadas.Add(float64(n))
	return c.JSON(fiber.Map{"atrasadas": n})
}

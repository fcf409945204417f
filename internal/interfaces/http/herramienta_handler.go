package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/application/usecase"
)

// HerramientaHandler maneja las peticiones HTTP para herramientas.
type HerramientaHandler struct {
	uc *usecase.HerramientaUseCase
}

// NewHerramientaHandler construye el handler.
func NewHerramientaHandler(uc *usecase.HerramientaUseCase) *HerramientaHandler {
	return &HerramientaHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta una herramienta asignada a un colaborador
// @Tags         herramientas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveHerramientaRequest  true  "Datos de la herramienta"
// @Success      201   {object}  dto.HerramientaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/herramientas [post]
func (h *HerramientaHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveHerramientaRequest
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
// @Summary      Obtener herramienta por ID
// @Tags         herramientas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la herramienta"
// @Success      200  {object}  dto.HerramientaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/herramientas/{id} [get]
func (h *HerramientaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar herramientas
// @Tags         herramientas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.HerramientaListResponse
// @Router       /api/herramientas [get]
func (h *HerramientaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByColaborador godoc
// @Summary      Listar herramientas asignadas a un colaborador
// @Tags         herramientas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del colaborador"
// @Success      200  {array}  dto.HerramientaResponse
// @Router       /api/herramientas/colaborador/{id} [get]
func (h *HerramientaHandler) ListByColaborador(c *fiber.Ctx) error {
	out, err := h.uc.ListByColaborador(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Responsiva godoc
// @Summary      Generar la carta responsiva en PDF de un colaborador
// @Tags         herramientas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del colaborador"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/herramientas/colaborador/{id}/responsiva [get]
func (h *HerramientaHandler) Responsiva(c *fiber.Ctx) error {
	data, err := h.uc.Responsiva(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="responsiva.pdf"`)
	return c.Send(data)
}

// Update godoc
// @Summary      Actualizar herramienta (permite reasignación)
// @Tags         herramientas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la herramienta"
// @Param        body  body  dto.SaveHerramientaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.HerramientaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/herramientas/{id} [put]
func (h *HerramientaHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveHerramientaRequest
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
// @Summary      Eliminar herramienta
// @Tags         herramientas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la herramienta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/herramientas/{id} [delete]
func (h *HerramientaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tiservices/backoffice-api/internal/application/dto"
	"github.com/tiservices/backoffice-api/internal/application/usecase"
)

// ColaboradorHandler maneja las peticiones HTTP para colaboradores.
type ColaboradorHandler struct {
	uc *usecase.ColaboradorUseCase
}

// NewColaboradorHandler construye el handler.
func NewColaboradorHandler(uc *usecase.ColaboradorUseCase) *ColaboradorHandler {
	return &ColaboradorHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un colaborador (número de empleado asignado por el servidor)
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveColaboradorRequest  true  "Datos del colaborador"
// @Success      201   {object}  dto.ColaboradorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/colaboradores [post]
func (h *ColaboradorHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveColaboradorRequest
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
// @Summary      Obtener colaborador por ID
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del colaborador"
// @Success      200  {object}  dto.ColaboradorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [get]
func (h *ColaboradorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar colaboradores
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "Solo activos"
// @Param        limit    query  int   false  "Límite"   default(50)
// @Param        offset   query  int   false  "Offset"   default(0)
// @Success      200      {object}  dto.ColaboradorListResponse
// @Router       /api/colaboradores [get]
func (h *ColaboradorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("activos", false), dto.PageRequest{
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.SaveColaboradorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ColaboradorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [put]
func (h *ColaboradorHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveColaboradorRequest
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
// @Summary      Eliminar colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Param        id  path  string  true  "ID del colaborador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [delete]
func (h *ColaboradorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

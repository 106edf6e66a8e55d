package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/usecase"
)

// ExpenseCategoryHandler maneja las peticiones HTTP de categorías de gasto (protegido).
type ExpenseCategoryHandler struct {
	uc *usecase.ExpenseCategoryUseCase
}

// NewExpenseCategoryHandler construye el handler.
func NewExpenseCategoryHandler(uc *usecase.ExpenseCategoryUseCase) *ExpenseCategoryHandler {
	return &ExpenseCategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías de gasto
// @Tags         expense-categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ExpenseCategoryResponse
// @Router       /api/expense-categories [get]
func (h *ExpenseCategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría de gasto
// @Tags         expense-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseCategoryRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.ExpenseCategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expense-categories [post]
func (h *ExpenseCategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Renombrar categoría de gasto
// @Tags         expense-categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CreateExpenseCategoryRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ExpenseCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expense-categories/{id} [put]
func (h *ExpenseCategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CreateExpenseCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in.CategoryName)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría de gasto
// @Tags         expense-categories
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expense-categories/{id} [delete]
func (h *ExpenseCategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

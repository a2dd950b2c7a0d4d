package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/multistore-api/internal/application/dto"
	"github.com/jhoicas/multistore-api/internal/application/usecase"
)

// BrandHandler maneja /api/v3/brands. Los IDs salen de la secuencia de tabla del store brand.
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Save godoc
// @Summary      Guardar marca
// @Description  Sin id inserta (el store asigna el id); con id reemplaza la fila.
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BrandRequest  true  "Marca"
// @Success      200   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v3/brands [post]
func (h *BrandHandler) Save(c *fiber.Ctx) error {
	var in dto.BrandRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// GetByID godoc
// @Summary      Obtener marca por ID
// @Tags         brands
// @Produce      json
// @Param        id   path      int  true  "ID de la marca"
// @Success      200  {object}  dto.BrandResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v3/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar marcas
// @Tags         brands
// @Produce      json
// @Success      200  {array}   dto.BrandResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v3/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

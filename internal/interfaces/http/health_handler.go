package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/multistore-api/internal/application/dto"
)

// StorePinger verifica la conectividad de los stores; implementado por datastore.Registry.
type StorePinger interface {
	Ping(ctx context.Context) map[string]error
}

// HealthHandler expone /health.
type HealthHandler struct {
	stores StorePinger
}

func NewHealthHandler(stores StorePinger) *HealthHandler {
	return &HealthHandler{stores: stores}
}

// Check godoc
// @Summary      Estado de los stores
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	res := dto.HealthResponse{Status: "ok", Stores: map[string]string{}}
	for group, err := range h.stores.Ping(c.UserContext()) {
		if err != nil {
			res.Status = "degraded"
			res.Stores[group] = err.Error()
			continue
		}
		res.Stores[group] = "ok"
	}
	if res.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return c.JSON(res)
}

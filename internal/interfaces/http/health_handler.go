package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
)

// HealthHandler estado de la consola y API a la que apunta.
type HealthHandler struct {
	service string
	api     string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(service, api string) *HealthHandler {
	return &HealthHandler{service: service, api: api}
}

// Health godoc
// @Summary      Estado de la consola
// @Description  No consulta la API de inventario; solo informa a cuál apunta.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok", Service: h.service, API: h.api})
}

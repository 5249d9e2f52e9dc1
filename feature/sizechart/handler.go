package sizechart

import (
	"size-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the size chart.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the size chart routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sizechart")
	group.Get("/resolve", h.HandleResolve)
	group.Post("/reload", h.HandleReload)
}

// HandleResolve looks up the cross reference of a single size.
// @Summary Resolve Size
// @Description Resolve a brand/gender/size triple against the loaded size chart.
// @Tags sizechart
// @Produce json
// @Param brand query string true "Brand (e.g. 'Nike')"
// @Param gender query string true "Gender (MALE, FEMALE, uomo, donna)"
// @Param size query string true "Size in the brand's scale (e.g. '9.5')"
// @Success 200 {object} SizeMapping "Size mapping"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "No match"
// @Router /sizechart/resolve [get]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "brand is required"})
	}

	gender, err := ParseGender(c.Query("gender"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	size, ok := ParseLabel(c.Query("size"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "size must be a positive number"})
	}

	mapping, ok := h.service.Resolve(brand, gender, size)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no matching size chart row"})
	}
	return c.JSON(mapping)
}

// HandleReload re-reads the size chart source.
// @Summary Reload Size Chart
// @Description Re-read the size chart from its source and swap the in-memory table.
// @Tags sizechart
// @Produce json
// @Success 200 {object} map[string]any "Reloaded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sizechart/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rows, err := h.service.Reload(c.Context())
	if err != nil {
		l.Error("Size chart reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "reloaded",
		"rows":   rows,
	})
}

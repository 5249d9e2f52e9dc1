package audit

import (
	"errors"

	"size-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the audit trail.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/syncs", h.HandleListSyncs)
}

// HandleListSyncs lists the most recent variant synchronizations.
// @Summary List Syncs
// @Description List the most recent variant metafield synchronizations, newest first.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Success 200 {array} SyncRecord "Sync records"
// @Failure 503 {object} map[string]string "Audit database not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/syncs [get]
func (h *Handler) HandleListSyncs(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.Recent(c.Context(), c.QueryInt("limit", DefaultLimit))
	if errors.Is(err, ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Listing sync records failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(records)
}

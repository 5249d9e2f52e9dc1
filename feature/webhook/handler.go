package webhook

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"size-sync/core/idempotency"
	"size-sync/core/logger"
	"size-sync/core/middleware/signature"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeliveryHeader carries the unique id of a webhook delivery.
const DeliveryHeader = "X-Shopify-Webhook-Id"

// Handler handles inbound product webhooks.
type Handler struct {
	service *Service
	secret  string
	dedupe  idempotency.Store
	ttl     time.Duration
}

// NewHandler creates a new webhook handler. An empty secret skips signature checks
// and a nil store skips de-duplication.
func NewHandler(service *Service, secret string, dedupe idempotency.Store, ttl time.Duration) *Handler {
	return &Handler{
		service: service,
		secret:  secret,
		dedupe:  dedupe,
		ttl:     ttl,
	}
}

// RegisterRoutes registers the webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	verify := signature.New(h.secret)
	app.Post("/webhooks/products/create", verify, h.HandleProductCreated)
	app.Post("/product-created", verify, h.HandleProductCreated)
}

// HandleProductCreated processes a product creation webhook.
// @Summary Product Created Webhook
// @Description Sync footwear size metafields for every variant of a newly created product.
// @Tags webhook
// @Accept json
// @Produce plain
// @Param X-Shopify-Hmac-Sha256 header string false "Base64 HMAC-SHA256 of the body"
// @Param X-Shopify-Webhook-Id header string false "Delivery id used for de-duplication"
// @Param event body ProductEvent true "Product payload"
// @Success 200 {string} string "OK or ignored"
// @Failure 400 {string} string "Invalid JSON"
// @Failure 401 {string} string "Invalid signature"
// @Router /webhooks/products/create [post]
func (h *Handler) HandleProductCreated(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var event ProductEvent
	if body := c.Body(); len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &event); err != nil {
			l.Warn("Rejected webhook with invalid JSON", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).SendString("invalid JSON")
		}
	}

	ctx := c.UserContext()
	if rid, ok := c.Locals(logger.RayIDKey).(string); ok {
		ctx = WithRayID(ctx, rid)
	}

	// Header values are only valid for the lifetime of the request.
	if id := strings.Clone(c.Get(DeliveryHeader)); id != "" && h.dedupe != nil {
		fresh, err := h.dedupe.MarkProcessed(ctx, id, h.ttl)
		switch {
		case err != nil:
			l.Warn("Webhook de-duplication unavailable, processing anyway", zap.String("delivery_id", id), zap.Error(err))
		case !fresh:
			l.Info("Duplicate webhook delivery, skipping", zap.String("delivery_id", id))
			return c.SendString(StatusOK)
		}
	}

	summary := h.service.Handle(ctx, &event)
	return c.SendString(summary.Status)
}

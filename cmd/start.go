package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"size-sync/core/config"
	"size-sync/core/idempotency"
	"size-sync/core/loader"
	"size-sync/core/logger"
	"size-sync/core/middleware/auth"
	"size-sync/core/middleware/rayid"

	"size-sync/feature/audit"
	"size-sync/feature/sizechart"
	"size-sync/feature/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "size-sync/docs/swagger"
)

// @title Size Sync API
// @version 1.0
// @description Footwear size metafield sync for Shopify product webhooks.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the webhook server",
	Long:  `Loads the size chart, starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load the size chart (required)
		chart, err := loadSizeChart(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to load size chart", zap.Error(err))
		}

		// 4. Audit database (optional)
		auditSvc := openAudit(cfg, logg)

		// 5. Webhook de-duplication
		dedupe, err := idempotency.New(cfg.Idempotency)
		if err != nil {
			logg.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		if dedupe != nil {
			defer dedupe.Close()
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 7. Initialize Feature Loaders
		// Public features authenticate by webhook signature, admin features by API key.
		hooks := newWebhookService(cfg, chart, auditSvc, logg, false)

		public := loader.NewManager()
		public.Register(webhook.NewFeature(hooks, webhook.NewHandler(hooks, cfg.Server.WebhookSecret, dedupe, cfg.Idempotency.TTL())))

		admin := loader.NewManager()
		admin.Register(sizechart.NewFeature(chart))
		admin.Register(audit.NewFeature(auditSvc))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/healthz", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"status": "ok",
				"rows":   chart.Table().Len(),
			})
		})
		if err := public.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 4. Auth (Protect admin API)
		if cfg.Server.ApiKey == "" {
			logg.Warn("server.api_key is empty, admin routes are unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := admin.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("webhook_signatures", cfg.Server.VerifiesWebhooks()),
				zap.Int("size_chart_rows", chart.Table().Len()),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

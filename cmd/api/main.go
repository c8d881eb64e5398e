package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-platform-admin-ws/internal/handler"
	"go-platform-admin-ws/internal/license"
	"go-platform-admin-ws/internal/middleware"
	"go-platform-admin-ws/internal/model"
	"go-platform-admin-ws/internal/repository"
	"go-platform-admin-ws/internal/service"
	"go-platform-admin-ws/internal/ws"
	"go-platform-admin-ws/pkg/database"
	"go-platform-admin-ws/pkg/logger"
	"go-platform-admin-ws/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	fiberadaptor "github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env and logger
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	if err := logger.Init(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	zlog := logger.L()

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Platform{}, &model.ProjectRole{}, &model.FlowTemplate{})

	// 3. Seed default platform and its role bundles
	seedDefaultPlatform(db, zlog)

	// 4. Setup event hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	platformRepo := repository.NewPlatformRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	templateRepo := repository.NewTemplateRepo(db)

	licenseClient := license.NewHTTPClient("")

	roleService := service.NewRoleService(roleRepo, wsHub)
	platformService := service.NewPlatformService(platformRepo, licenseClient, wsHub)
	templateService := service.NewTemplateService(templateRepo, wsHub)

	roleHandler := handler.NewRoleHandler(roleService)
	platformHandler := handler.NewPlatformHandler(platformService)
	templateHandler := handler.NewTemplateHandler(templateService)
	copilotHandler := handler.NewCopilotHandler()

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Platform Admin v1.0",
	})

	app.Use(fiberlogger.New()) // Access logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS
	app.Use(metrics.Middleware())

	// 7. Routes
	app.Get("/metrics", fiberadaptor.HTTPHandler(metrics.PrometheusHandler()))

	api := app.Group("/api/v1")

	// Copilot scenario catalog (static, public)
	api.Get("/copilot/scenarios", copilotHandler.GetScenarios)

	// All routes below require a resolved principal
	protected := api.Group("", middleware.RequireAuth())

	// Project role routes
	protected.Get("/project-roles", roleHandler.GetRoles)
	protected.Post("/project-roles", roleHandler.CreateRole)
	protected.Post("/project-roles/:id", roleHandler.UpdateRole)
	protected.Delete("/project-roles/:id", roleHandler.DeleteRole)

	// Platform settings routes (path id must match the principal's platform)
	protected.Get("/platforms/:id", middleware.RequirePlatformParam(), platformHandler.GetPlatform)
	protected.Post("/platforms/:id", middleware.RequirePlatformParam(), platformHandler.UpdateSmtp)

	// License key routes
	protected.Post("/license-keys/verify", platformHandler.VerifyLicenseKey)
	protected.Get("/license-keys/status", platformHandler.GetLicenseStatus)

	// Flow template sharing routes
	protected.Get("/templates", templateHandler.GetTemplates)
	protected.Get("/templates/:id", templateHandler.GetTemplate)
	protected.Post("/templates", templateHandler.ShareTemplate)
	protected.Delete("/templates/:id", templateHandler.DeleteTemplate)

	// Admin event stream
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

// seedDefaultPlatform creates a platform and its default role bundles on
// first boot so a fresh install is immediately usable.
func seedDefaultPlatform(db *gorm.DB, log *zap.Logger) {
	platformRepo := repository.NewPlatformRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	count, err := platformRepo.Count()
	if err != nil {
		log.Warn("failed to count platforms", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	platform := &model.Platform{Name: "Default Platform"}
	platform.CreatedBy = "system"
	platform.UpdatedBy = "system"
	if err := platformRepo.Create(platform); err != nil {
		log.Warn("failed to seed default platform", zap.Error(err))
		return
	}

	for _, defaultRole := range model.DefaultRoles {
		role := defaultRole
		role.PlatformID = platform.ID
		role.CreatedBy = "system"
		role.UpdatedBy = "system"
		if err := roleRepo.Create(&role); err != nil {
			log.Warn("failed to seed default role", zap.String("name", role.Name), zap.Error(err))
		}
	}

	log.Info("default platform seeded", zap.String("platform_id", platform.ID.String()))
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Sonai2004/My-Portfolio/config"
	"github.com/Sonai2004/My-Portfolio/db"
	"github.com/Sonai2004/My-Portfolio/internal/admin/domain"
	adminhandler "github.com/Sonai2004/My-Portfolio/internal/admin/handler"
	adminrepo "github.com/Sonai2004/My-Portfolio/internal/admin/repository/postgres"
	adminservice "github.com/Sonai2004/My-Portfolio/internal/admin/service"
	contacthandler "github.com/Sonai2004/My-Portfolio/internal/contact/handler"
	contactrepo "github.com/Sonai2004/My-Portfolio/internal/contact/repository/postgres"
	contactservice "github.com/Sonai2004/My-Portfolio/internal/contact/service"
	contenthandler "github.com/Sonai2004/My-Portfolio/internal/content/handler"
	contentrepo "github.com/Sonai2004/My-Portfolio/internal/content/repository/postgres"
	contentservice "github.com/Sonai2004/My-Portfolio/internal/content/service"
	"github.com/Sonai2004/My-Portfolio/internal/logger"
	"github.com/Sonai2004/My-Portfolio/internal/mailer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "portfolio-api",
		Short: "REST API backend for the portfolio website",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate [up|down|version]",
		Short: "Apply database migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger.Init(cfg.LogLevel, cfg.LogFormat)
			return db.RunMigrate(logger.L, cfg.DBURL, args[0])
		},
	}

	root.AddCommand(serveCmd, migrateCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serve() error {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return err
	}

	sender := mailer.NewSender(cfg)

	adminRepo := adminrepo.NewPostgresAdminRepository(pool)
	tokenService := adminservice.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryMin)
	authService := adminservice.NewAuthService(adminRepo, tokenService, sender, cfg)
	adminService := adminservice.NewAdminService(adminRepo, cfg)
	authHandler := adminhandler.NewAuthHandler(authService, adminService, tokenService)

	contentRepo := contentrepo.NewPostgresContentRepository(pool)
	contentService := contentservice.NewContentService(contentRepo)
	contentHandler := contenthandler.NewContentHandler(contentService, cfg.UploadDir, cfg.MaxUploadMB)

	contactRepo := contactrepo.NewPostgresMessageRepository(pool)
	contactService := contactservice.NewContactService(contactRepo, sender)
	contactHandler := contacthandler.NewContactHandler(contactService)

	if err := adminService.EnsureDefaultAdmin(ctx); err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		BodyLimit: (cfg.MaxUploadMB + 1) << 20,
	})
	app.Static("/uploads", cfg.UploadDir)

	requireAdmin := authHandler.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)
	contactRate := limiter.New(limiter.Config{
		Max:        cfg.ContactRatePerMin,
		Expiration: time.Minute,
	})

	adminhandler.RegisterRoutes(app, authHandler)
	contenthandler.RegisterRoutes(app, contentHandler, requireAdmin)
	contacthandler.RegisterRoutes(app, contactHandler, contactRate, requireAdmin)

	logger.L.Info("server listening", "port", cfg.Port)
	return app.Listen(":" + cfg.Port)
}

package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"nahl/internal/config"
	"nahl/internal/handler"
	"nahl/internal/mailer"
	"nahl/internal/middleware"
	"nahl/internal/service"
	"nahl/internal/store"
	"nahl/internal/uploads"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; in production everything comes from the real
	// environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"port", cfg.Port,
		"content_dir", cfg.ContentDir,
		"smtp_configured", cfg.SMTPConfigured(),
	)

	// Image-type registry (thumbnailing capability resolved once here).
	registry, err := uploads.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load image-type registry: %v", err)
	}

	// Optional contact relay.
	var contactMailer service.Mailer
	if cfg.SMTPConfigured() {
		smtp, err := mailer.New(cfg)
		if err != nil {
			log.Fatalf("Failed to create SMTP mailer: %v", err)
		}
		contactMailer = smtp
	} else {
		logger.Info("smtp not fully configured, contact messages will only be saved")
	}

	// Stores and services
	docStore := store.New(cfg.ContentDir, logger)
	contentService := service.NewContentService(docStore, logger)
	contactService := service.NewContactService(cfg.MessagesDir, contactMailer, logger)
	uploadService := service.NewUploadService(cfg, registry, logger)

	// Handlers and routes
	pagesHandler := handler.NewPagesHandler(contentService, logger)
	projectsHandler := handler.NewProjectsHandler(contentService, logger)
	contactHandler := handler.NewContactHandler(contactService, logger)
	uploadsHandler := handler.NewUploadsHandler(uploadService, cfg.UploadsDir, logger)

	mux := handler.Routes(pagesHandler, projectsHandler, contactHandler, uploadsHandler, cfg.AdminToken)

	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is empty, page creation is disabled")
	}

	// Middleware chain, outermost first: CORS → request log → recovery.
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLog(logger)(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", middleware.AdminTokenHeader},
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

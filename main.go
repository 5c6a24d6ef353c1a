package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/config"
	"github.com/blogem/leadsplatter/controllers"
	"github.com/blogem/leadsplatter/database"
	"github.com/blogem/leadsplatter/integrations/chat"
	"github.com/blogem/leadsplatter/integrations/checkout"
	"github.com/blogem/leadsplatter/integrations/crm"
	"github.com/blogem/leadsplatter/integrations/mailer"
	appmiddleware "github.com/blogem/leadsplatter/middleware"
	"github.com/blogem/leadsplatter/models"
	"github.com/blogem/leadsplatter/repositories"
	"github.com/blogem/leadsplatter/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from .env and the environment
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ConfigureLogging(cfg)

	// Initialize database
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	r := setupApp(cfg, db)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(log.Fields{
			"port":        cfg.Port,
			"environment": cfg.Environment,
			"database":    cfg.DatabasePath,
		}).Info("🚀 Leadsplatter server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

// setupApp wires repositories, integrations, services and controllers on top of db
func setupApp(cfg *config.Config, db *sqlx.DB) *chi.Mux {
	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Select live or disabled integrations once, from configuration
	integrations := services.Integrations{
		CRM: crm.New(crm.Config{
			AccessToken: cfg.HubSpotAccessToken,
			BaseURL:     cfg.HubSpotAPIURL,
			Timeout:     cfg.HTTPClientTimeout,
		}),
		Mailer: mailer.New(mailer.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			Timeout:  cfg.HTTPClientTimeout,
		}),
		Chat: chat.New(chat.Config{
			Token:    cfg.HuggingFaceToken,
			ModelURL: cfg.HuggingFaceModelURL,
			Timeout:  cfg.HTTPClientTimeout,
		}),
		Checkout: checkout.New(checkout.Config{
			SecretKey: cfg.StripeSecretKey,
			PublicURL: cfg.PublicURL,
		}),
	}

	log.WithFields(log.Fields{
		"crm":      integrations.CRM.Mode(),
		"mailer":   integrations.Mailer.Mode(),
		"checkout": integrations.Checkout.Mode(),
	}).Info("Integrations configured")

	// Initialize services
	srvs := services.NewServices(repos, integrations)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, cfg.StaticDir)

	return setupRouter(ctrl, cfg)
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(appmiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.AuditLogger)

	compressor := middleware.NewCompressor(5,
		"text/html", "text/css", "text/plain", "text/javascript",
		"application/javascript", "application/json", "image/svg+xml",
	)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	r.Use(compressor.Handler)

	r.Get("/health", ctrl.Health.Index)

	// API ROUTES (CORS and per-client rate limiting)
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         300,
		}))
		r.Use(httprate.Limit(cfg.RateLimitRequests, cfg.RateLimitWindow,
			httprate.WithKeyFuncs(appmiddleware.IPKey),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, models.ErrorResponse{Error: "Too many requests, please try again later."})
			}),
		))

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, models.ErrorResponse{Error: "Not found"})
		})

		r.Post("/crm/lead", ctrl.Lead.Capture)
		r.Post("/ai/chat", ctrl.Chat.Reply)
		r.Post("/create-checkout-session", ctrl.Checkout.CreateSession)

		// PROTECTED ROUTES (dashboard credentials required)
		r.With(appmiddleware.RequireBasicAuth(cfg.DashboardUser, cfg.DashboardPassword)).
			Get("/analytics", ctrl.Analytics.Index)
	})

	// Everything else is the single page application
	r.Get("/*", ctrl.SPA.Serve)

	return r
}

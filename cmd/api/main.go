// @title Course Booking API
// @version 1.0
// @description Slot-based course booking: per-product session slots with seat capacity, order placement, capacity commit on payment, and joining-instruction emails.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"coursebooking/config"
	_ "coursebooking/docs"
	"coursebooking/internal/adapters/auth"
	"coursebooking/internal/adapters/email"
	delivery "coursebooking/internal/delivery/http"
	"coursebooking/internal/delivery/http/controllers"
	"coursebooking/internal/delivery/http/middleware"
	"coursebooking/internal/repository/postgres"
	"coursebooking/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	slotRepo := postgres.NewSlotRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	hasher := auth.NewBcryptHasher(0)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	notifier := services.NewNotificationService(logger, mailer, renderer)
	catalogSvc := services.NewCatalogService(slotRepo)
	bookingSvc := services.NewBookingService(logger, slotRepo, bookingRepo, notifier)
	reportingSvc := services.NewReportingService(logger, slotRepo, bookingRepo)
	authSvc := services.NewAuthService(services.ManagerAccount{
		Email:        cfg.ManagerEmail,
		PasswordHash: cfg.ManagerPasswordHash,
		Salt:         cfg.ManagerPasswordSalt,
	}, hasher, issuer, cfg.JWTExpiry)

	mux := delivery.NewRouter(
		logger,
		verifier,
		controllers.NewAuthController(logger, authSvc),
		controllers.NewCatalogController(logger, catalogSvc),
		controllers.NewBookingController(logger, bookingSvc),
		controllers.NewOrderController(logger, bookingSvc),
		controllers.NewAdminController(logger, reportingSvc),
	)

	handler := middleware.LoggingMiddleware(logger, mux)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

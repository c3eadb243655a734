package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/config"
	"github.com/rowanvale/brandsite-api/internal/infra/database"
	"github.com/rowanvale/brandsite-api/internal/infra/http/handlers"
	"github.com/rowanvale/brandsite-api/internal/infra/http/middleware"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
	"github.com/rowanvale/brandsite-api/internal/usecase"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// 1. Repositories
	contactRepo := database.NewContactRepository(db)
	subscriberRepo := database.NewSubscriberRepository(db)
	waitlistRepo := database.NewWaitlistRepository(db)
	resourceRepo := database.NewResourceRepository(db)
	downloadRepo := database.NewResourceDownloadRepository(db)
	emailLogRepo := database.NewEmailLogRepository(db)

	// 2. Mail: provider, dispatcher, retry, templates
	var provider mail.Provider
	switch cfg.MailProvider {
	case config.MailProviderSMTP:
		provider = mail.NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	default:
		provider = mail.NewPostmarkProvider(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	}

	dispatcher := mail.NewDispatcher(provider, emailLogRepo, cfg.SenderEmail, cfg.ReplyToEmail, logger)
	retrier := mail.NewRetrier(2, logger)
	templates := mail.NewTemplates(cfg.SiteName, cfg.OwnerEmail)

	// 3. UseCases
	submitContactUC := usecase.NewSubmitContactUseCase(contactRepo, dispatcher, retrier, templates, logger)
	subscribeUC := usecase.NewSubscribeNewsletterUseCase(subscriberRepo, dispatcher, retrier, templates, logger)
	joinWaitlistUC := usecase.NewJoinWaitlistUseCase(waitlistRepo, dispatcher, retrier, templates, logger)
	downloadUC := usecase.NewDownloadResourceUseCase(resourceRepo, downloadRepo, dispatcher, retrier, templates, logger)

	// 4. Handlers
	rateLimiter := handlers.NewRateLimiter(10, time.Minute)
	contactHandler := handlers.NewContactHandler(submitContactUC, rateLimiter)
	newsletterHandler := handlers.NewNewsletterHandler(subscribeUC, rateLimiter)
	waitlistHandler := handlers.NewWaitlistHandler(joinWaitlistUC, rateLimiter)
	resourceHandler := handlers.NewResourceHandler(downloadUC, rateLimiter)
	webhookHandler := handlers.NewWebhookHandler(emailLogRepo, logger)
	healthHandler := handlers.NewHealthHandler(db, cfg.MailProvider)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/api/contact", contactHandler.Handle)
	r.Post("/api/newsletter", newsletterHandler.Handle)
	r.Post("/api/waitlist", waitlistHandler.Handle)
	r.Post("/api/resources/{slug}/download", resourceHandler.HandleDownload)
	r.Post("/webhooks/email", webhookHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

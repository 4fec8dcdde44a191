package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"vitrine/internal/config"
	"vitrine/internal/database"
	"vitrine/internal/handler"
	"vitrine/internal/landing"
	"vitrine/internal/mw"
	"vitrine/internal/scheduler"
	"vitrine/internal/service"
	"vitrine/internal/sitemap"
	"vitrine/internal/storage"
	"vitrine/internal/worker"
)

func main() {
	cfg := config.New()

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(context.Background(), db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	// Page store
	var pageStore storage.PageStore
	diskStore, err := storage.NewDiskStore(cfg.PagesDir, cfg.BaseURL)
	if err != nil {
		slog.Error("failed to init page store", "error", err)
		os.Exit(1)
	}
	pageStore = diskStore
	if cfg.PageStore == "s3" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
		})
		if err != nil {
			slog.Error("failed to init s3 page store", "error", err)
			os.Exit(1)
		}
		pageStore = s3Store
	}

	// Sitemap + crawler pings
	sm, err := sitemap.New(cfg.SitemapPath)
	if err != nil {
		slog.Error("failed to init sitemap", "error", err)
		os.Exit(1)
	}
	pinger := sitemap.NewPinger()
	sitemapURL := cfg.BaseURL + "/sitemap.xml"

	// Synthesizer
	keywords, err := landing.LoadKeywords()
	if err != nil {
		slog.Error("failed to load keyword table", "error", err)
		os.Exit(1)
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	synth := landing.NewSynthesizer(pageStore, sm, pinger, sitemapURL, "/uploads", keywords, rnd)

	// Services
	authSvc := service.NewAuthService(db)
	propertySvc := service.NewPropertyService(db)
	orderSvc := service.NewOrderService(db)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/api/user/register", handler.RegisterHandler(authSvc, cfg.JWTSecret))
	r.Post("/api/user/login", handler.LoginHandler(authSvc, cfg.JWTSecret))
	r.Post("/api/payments/callback", handler.PaymentCallbackHandler(orderSvc))
	r.Get("/api/listings/{id}", handler.GetListingHandler(propertySvc))
	r.Get("/api/listings/{id}/qr", handler.QRHandler(propertySvc))
	r.Get("/api/listings/{id}/pdf", handler.PDFHandler(propertySvc))

	// Generated pages, photos and the sitemap
	r.Handle("/pages/*", http.StripPrefix("/pages/", http.FileServer(http.Dir(diskStore.Root()))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	r.Get("/sitemap.xml", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		http.ServeFile(w, req, sm.Path())
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.JWTSecret))

		r.Post("/api/listings", handler.CreateListingHandler(propertySvc, synth, cfg.UploadsDir))
		r.Get("/api/listings", handler.ListListingsHandler(propertySvc))
		r.Put("/api/listings/{id}", handler.UpdateListingHandler(propertySvc))
		r.Delete("/api/listings/{id}", handler.DeleteListingHandler(propertySvc))

		r.Post("/api/orders", handler.CreateOrderHandler(orderSvc))
		r.Get("/api/orders", handler.ListOrdersHandler(orderSvc))
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())

	if cfg.PaymentAddress != "" {
		paymentClient := service.NewPaymentClient(cfg.PaymentAddress)
		paymentWorker := worker.NewPaymentWorker(orderSvc, paymentClient)
		go paymentWorker.Start(ctx)
	}

	sched := scheduler.New(pinger, sitemapURL)
	if err := sched.Start(ctx, cfg.PingCron); err != nil {
		slog.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop workers
	sched.Stop()
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}

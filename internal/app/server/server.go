package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/auth"
	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/domain/hygiene"
	"github.com/apurva4122/barcoding-sub001/internal/domain/payroll"
	"github.com/apurva4122/barcoding-sub001/internal/domain/reports"
	"github.com/apurva4122/barcoding-sub001/internal/domain/tracking"
	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
	"github.com/apurva4122/barcoding-sub001/internal/platform/config"
	"github.com/apurva4122/barcoding-sub001/internal/platform/db"
	attendancehandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/attendance"
	authhandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/auth"
	hygienehandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/hygiene"
	payrollhandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/payroll"
	reportshandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/reports"
	trackinghandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/tracking"
	workershandler "github.com/apurva4122/barcoding-sub001/internal/transport/http/handlers/workers"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	// The admin password is configured in plain text and hashed once at boot;
	// only the hash is handed to the login handler.
	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("password hash failed: %v", err)
	}

	workerStore := worker.NewStore(pool)
	attendanceStore := attendance.NewStore(pool)
	trackingStore := tracking.NewStore(pool)
	hygieneStore := hygiene.NewStore(pool)
	reportsStore := reports.NewStore(pool)

	workerService := worker.NewService(workerStore)
	attendanceService := attendance.NewService(attendanceStore)
	payrollService := payroll.NewService(workerStore, attendanceStore)
	trackingService := tracking.NewService(trackingStore, cfg.LabelSizePixels)
	hygieneService := hygiene.NewService(hygieneStore)
	reportsService := reports.NewService(reportsStore, attendanceStore, trackingStore, hygieneStore, payrollService)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
		authhandler.NewHandler(passwordHash, cfg.JWTSecret, tokenTTL).RegisterRoutes(r)
		workershandler.NewHandler(workerService).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		trackinghandler.NewHandler(trackingService).RegisterRoutes(r)
		hygienehandler.NewHandler(hygieneService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)
	})

	log.Printf("server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

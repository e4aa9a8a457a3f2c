package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dietSurvivalWeb/client"
	"dietSurvivalWeb/config"
	"dietSurvivalWeb/handlers"
	"dietSurvivalWeb/internal/workers"
	"dietSurvivalWeb/middleware"
	"dietSurvivalWeb/services"
)

func main() {
	cfg := config.Load()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		sessionStore services.SessionStore
		dbPing       handlers.Pinger
	)
	if cfg.DatabaseURL != "" {
		dbPool := connectDB(cfg.DatabaseURL)
		defer func() {
			log.Println("Closing database connection pool...")
			dbPool.Close()
		}()

		pgStore := services.NewPgSessionStore(dbPool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare session table:", err)
		}
		sessionStore, dbPing = pgStore, pgStore
	} else {
		log.Println("DATABASE_URL not set, keeping sessions in memory")
		sessionStore = services.NewMemorySessionStore()
	}

	middleware.InitPrometheus(prometheus.DefaultRegisterer, services.Collectors()...)

	api := client.New(cfg.APIBaseURL, cfg.UpstreamTimeout, client.WithObserver(services.ObserveUpstream))
	authService := services.NewAuthService(sessionStore, services.NewTokenMinter(cfg.SessionSecret), cfg.SessionTTL)

	renderer, err := handlers.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.CleanupVisitors(ctx)
	go workers.StartCleanupWorker(ctx, sessionStore, time.Hour)

	r.Use(rateLimiter.Middleware)
	r.Use(middleware.MonitorMiddleware)

	handlers.RegisterRoutes(r, handlers.Routes{
		Auth:      handlers.NewAuthHandler(authService, renderer, cfg.IsProduction(), cfg.KakaoAuthorizeURL()),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(api), renderer),
		Log:       handlers.NewLogHandler(services.NewMealService(api), renderer),
		Challenge: handlers.NewChallengeHandler(services.NewChallengeService(api), renderer),
		Profile:   handlers.NewProfileHandler(services.NewProfileService(api), renderer),
		Admin:     handlers.NewAdminHandler(renderer),
		Session:   middleware.SessionMiddleware(authService),
		CSRF:      middleware.CSRFMiddleware(cfg.SessionSecret, cfg.IsProduction()),
		Metrics:   middleware.BasicAuthMiddleware(cfg.MetricsUser, cfg.MetricsPass)(promhttp.Handler()),
		DB:        dbPing,
	})

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-CSRF-Token"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorilllaHandlers.AllowCredentials(),
	)

	port := ":" + cfg.Port

	server := http.Server{
		Addr:         port,
		Handler:      gorilllaHandlers.CombinedLoggingHandler(os.Stdout, corsHandler(r)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s (API %s)", port, cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("Got signal:", sig)
	stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}

func connectDB(dbURL string) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to Postgres")
	return dbPool
}

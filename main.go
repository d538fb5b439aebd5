package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/username/optionsjournal/backend/src/config"
	"github.com/username/optionsjournal/backend/src/handlers"
	"github.com/username/optionsjournal/backend/src/logger"
	"github.com/username/optionsjournal/backend/src/processors"
	"github.com/username/optionsjournal/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == config.Cfg.AllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Options journal classification backend starting...")

	logger.L.Info("Initializing upload result cache...",
		"ttl", config.Cfg.ResultCacheTTL, "cleanup", config.Cfg.ResultCacheCleanup)
	resultCache := cache.New(config.Cfg.ResultCacheTTL, config.Cfg.ResultCacheCleanup)

	logger.L.Info("Initializing services and handlers...")
	legAggregator := processors.NewLegAggregator()
	strategyClassifier := processors.NewStrategyClassifier()

	classificationService := services.NewClassificationService(
		legAggregator, strategyClassifier, resultCache,
	)

	classificationHandler := handlers.NewClassificationHandler(classificationService)
	uploadHandler := handlers.NewUploadHandler(classificationService)

	logger.L.Info("Configuring routes...")
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/classify", classificationHandler.HandleClassifyFills)
		r.Post("/fills/upload", uploadHandler.HandleUpload)
		r.Get("/uploads/{uploadID}", classificationHandler.HandleGetUploadResult)
		r.Get("/strategies", handlers.HandleGetStrategies)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Options journal backend is running"})
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}

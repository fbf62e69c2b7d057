package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/config"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/handler"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/middleware"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/store"
	"github.com/veerakarthick235/Voice-to-3D-Face-Animation-Generator/internal/viseme"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()
	logger.Info("animation server starting",
		zap.String("port", cfg.Port),
		zap.String("dataDir", cfg.DataDir),
		zap.Int("sampleRate", cfg.SampleRate),
	)

	st, err := store.Open(store.Options{
		Dir:    cfg.DataDir,
		Logger: store.NewBadgerLogger(logger),
	})
	if err != nil {
		logger.Fatal("open session store", zap.Error(err))
	}

	table := viseme.NewTable()
	h := handler.New(logger, table, st, cfg.SampleRate)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	if err := st.Close(); err != nil {
		logger.Error("close session store", zap.Error(err))
	}
}

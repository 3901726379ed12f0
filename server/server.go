package server

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"privacyassist/internal/config"
	"privacyassist/privacy"
	"privacyassist/quality"
	"privacyassist/server/handlers"
	"privacyassist/server/middleware"
	"privacyassist/server/services"
)

// Server HTTP сервер анализа приватности и качества датасетов
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New создает сервер: собирает анализаторы, хранилище сессии, сервис
// и маршруты. Источник случайности для отбора примеров значений посеян
// из конфигурации: нулевое семя означает невоспроизводимый продакшн-режим.
func New(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	privacyAnalyzer := privacy.NewDefaultAnalyzer()
	if cfg.SampleSeed != 0 {
		privacyAnalyzer = privacy.NewAnalyzer(privacy.DefaultPatterns(), rand.New(rand.NewSource(cfg.SampleSeed)))
	}
	qualityAnalyzer := quality.NewAnalyzer()

	store := services.NewDatasetStore(cfg.StoreTTL)
	service := services.NewAnalysisService(store, privacyAnalyzer, qualityAnalyzer, cfg.MaxDatasetCells)
	handler := handlers.NewAnalysisHandler(service)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	handlers.RegisterRoutes(router, handler, cfg.RateLimitRPS, cfg.RateLimitBurst)
	handlers.RegisterSwaggerRoutes(router, "localhost:"+cfg.Port)

	return &Server{
		cfg:    cfg,
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router возвращает роутер (для тестов)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start запускает сервер и блокируется до его остановки
func (s *Server) Start() error {
	LogInfo(context.Background(), "server starting", "port", s.cfg.Port)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("сервер остановился с ошибкой: %w", err)
	}
	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	LogInfo(ctx, "server shutting down")
	return s.http.Shutdown(ctx)
}

// @title Data Privacy Assist API
// @version 1.0
// @description API сервиса оценки приватности и качества табличных датасетов. Анализ рисков повторной идентификации, шесть измерений качества данных, пользовательские ограничения.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:9999
// @BasePath /
// @schemes http

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"privacyassist/internal/config"
	"privacyassist/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Data Privacy Assist...")

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	srv := server.New(cfg)

	// Останавливаемся по SIGINT/SIGTERM, дожидаясь активных запросов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		log.Println("Получен сигнал остановки, завершаем работу...")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Ошибка остановки сервера: %v", err)
		}
	}()

	log.Printf("Сервер слушает порт %s", cfg.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Ошибка сервера: %v", err)
	}

	log.Println("Сервер остановлен")
}

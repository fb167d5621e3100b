package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/atelie-design/pedido-service/internal/config"
	"github.com/atelie-design/pedido-service/internal/delivery/httpapi"
	"github.com/atelie-design/pedido-service/internal/infrastructure/kafka"
	"github.com/atelie-design/pedido-service/internal/infrastructure/metrics"
	"github.com/atelie-design/pedido-service/internal/infrastructure/migrate"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/repository"
	"github.com/atelie-design/pedido-service/internal/usecase/deliverable"
	"github.com/atelie-design/pedido-service/internal/usecase/installment"
	"github.com/atelie-design/pedido-service/internal/usecase/pedido"
	"github.com/atelie-design/pedido-service/internal/usecase/revision"
	"github.com/atelie-design/pedido-service/internal/usecase/tracking"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	publisher := kafka.NewKafkaPublisher(brokers, cfg.Kafka.Topic)
	defer publisher.Close()

	pedidoMetrics := metrics.NewPedidoMetrics()

	// Init repos
	pedidoRepo := repository.NewDefaultPedidoRepository(db)
	revisionRepo := repository.NewDefaultRevisionRepository(db)
	installmentRepo := repository.NewDefaultInstallmentRepository(db)
	deliverableRepo := repository.NewDefaultDeliverableRepository(db)
	activityRepo := repository.NewDefaultActivityRepository(db)
	txManager := postgres.NewGormTxManager(db)

	// Init usecases
	installmentUsecase := installment.NewDefaultInstallmentUsecase(
		installmentRepo, pedidoRepo, activityRepo, txManager, publisher, pedidoMetrics)
	revisionUsecase := revision.NewDefaultRevisionUsecase(
		revisionRepo, pedidoRepo, activityRepo, txManager, pedidoMetrics)
	deliverableUsecase := deliverable.NewDefaultDeliverableUsecase(
		deliverableRepo, pedidoRepo, activityRepo, txManager)
	pedidoUsecase := pedido.NewDefaultPedidoUsecase(
		pedidoRepo, installmentRepo, activityRepo, txManager,
		installmentUsecase, deliverableUsecase, publisher, pedidoMetrics)
	trackingUsecase := tracking.NewDefaultTrackingUsecase(
		pedidoRepo, activityRepo, deliverableRepo, pedidoMetrics)

	router := httpapi.NewRouter(
		httpapi.NewPedidoHandler(pedidoUsecase),
		httpapi.NewRevisionHandler(revisionUsecase),
		httpapi.NewInstallmentHandler(installmentUsecase),
		httpapi.NewDeliverableHandler(deliverableUsecase),
		httpapi.NewTrackingHandler(trackingUsecase),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("pedido-service listening", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}

func setupLogger(cfg *config.PedidoConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

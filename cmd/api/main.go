package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment-custody/internal/core/cache"
	"shipment-custody/internal/core/config"
	"shipment-custody/internal/core/httpclient"
	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/core/proxy"
	"shipment-custody/internal/core/server"
	"shipment-custody/internal/features/custody/adapters"
	"shipment-custody/internal/features/custody/handler"
	"shipment-custody/internal/features/custody/ports"
	"shipment-custody/internal/features/custody/service"

	"go.uber.org/zap"
)

// @title Shipment Custody API
// @version 1.0
// @description This API tracks the custody chain of shipments between dispatcher, shippers and recipient.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("strict_receive", cfg.Custody.StrictReceive),
	)

	// Store
	store, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create redis adapter", zap.Error(err))
	}
	defer store.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		cancelPing()
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	cancelPing()
	l.Info("Redis connection verified")

	shipments := adapters.NewRedisShipmentRepository(store)
	contracts := adapters.NewRedisContractRepository(store)
	participants := adapters.NewRedisParticipantRepository(store)
	custodyStore := adapters.NewRedisCustodyStore(store)

	// Event publishers
	publishers := []ports.EventPublisher{
		adapters.NewRedisEventPublisher(store, cfg.Events.Channel),
	}

	if brokers := cfg.Events.KafkaBrokerList(); len(brokers) > 0 {
		kafkaPublisher := adapters.NewKafkaEventPublisher(brokers, cfg.Events.KafkaTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				l.Warn("Failed to close kafka writer", zap.Error(err))
			}
		}()
		publishers = append(publishers, kafkaPublisher)
		l.Info("Kafka publisher enabled",
			zap.Strings("brokers", brokers),
			zap.String("topic", cfg.Events.KafkaTopic),
		)
	}

	if cfg.Events.WebhookURL != "" {
		proxySettings := proxy.Settings(cfg.Proxy)
		client := httpclient.NewClient(time.Duration(cfg.Events.WebhookTimeoutSeconds)*time.Second, proxySettings)
		publishers = append(publishers, adapters.NewWebhookEventPublisher(client, cfg.Events.WebhookURL))
		l.Info("Webhook publisher enabled", zap.Bool("proxy", proxySettings.HasProxy()))
	}

	events := adapters.NewAsyncEventPublisher(adapters.NewFanoutEventPublisher(publishers...), adapters.DefaultEventQueueSize)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := events.Close(ctx); err != nil {
			l.Warn("Pending events not delivered", zap.Error(err))
		}
	}()

	// Custody Service & Handler
	dispatcher := service.NewDispatcher(
		shipments,
		contracts,
		participants,
		custodyStore,
		events,
		service.Options{StrictReceive: cfg.Custody.StrictReceive},
	)
	custodySvc := service.NewSerialized(dispatcher)

	if cfg.Custody.SeedDemo {
		if err := custodySvc.SetupDemo(context.Background(), time.Now().UTC()); err != nil {
			l.Fatal("Failed to seed demo data", zap.Error(err))
		}
		l.Info("Demo data seeded")
	}

	custodyHdl := handler.NewCustodyHandler(custodySvc)

	srv := server.New(cfg, store)

	// Register Routes
	custodyHdl.Register(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}

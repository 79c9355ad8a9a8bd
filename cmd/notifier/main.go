package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"perfume-shop/internal/worker"
	"perfume-shop/pkg/config"
	"perfume-shop/pkg/logger"
	"perfume-shop/pkg/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New("notifier", cfg.Common.LogLevel)

	if err := cfg.RequireRabbit(); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}

	broker, err := rabbit.Dial(cfg.Rabbit.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbit connect failed")
	}
	defer func() { _ = broker.Close() }()

	if err := rabbit.DeclareQueueWithDLQ(broker.Ch, rabbit.QueueSpec{
		Name:     "notification.q",
		BindKeys: []string{"orders.*"},
		DLQ:      "notification.dlq",
		Prefetch: 50,
	}); err != nil {
		log.Fatal().Err(err).Msg("declare notification topology failed")
	}

	deliveries, err := broker.Subscribe("notification.q", 50)
	if err != nil {
		log.Fatal().Err(err).Msg("consume failed")
	}

	w := &worker.Consumer{Log: log}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, deliveries)

	log.Info().Msg("notification worker started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown")
	cancel()
}

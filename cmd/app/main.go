package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	httpx "perfume-shop/internal/http"
	"perfume-shop/internal/http/handlers"
	"perfume-shop/internal/mail"
	"perfume-shop/internal/outbox"
	"perfume-shop/internal/repo"
	"perfume-shop/internal/service"
	"perfume-shop/pkg/cache"
	"perfume-shop/pkg/config"
	"perfume-shop/pkg/logger"
	"perfume-shop/pkg/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("perfume-shop", cfg.Common.LogLevel)

	if err := cfg.RequirePostgres(); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}

	ctxDB, cancelDB := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDB()

	db, err := pgxpool.New(ctxDB, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect failed")
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	perfumesPG := &repo.PerfumesPG{DB: db}
	var perfumesRepo service.PerfumesRepo = perfumesPG
	if cfg.Redis.Addr != "" {
		rd := cache.New(cfg.Redis.Addr)
		defer func() { _ = rd.Close() }()
		if err := rd.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		} else {
			perfumesRepo = &repo.PerfumesCached{PerfumesSource: perfumesPG, Cache: rd, TTL: cfg.Redis.TTL}
			log.Info().Str("addr", cfg.Redis.Addr).Msg("catalog cache enabled")
		}
	}

	usersRepo := &repo.UsersPG{DB: db}
	ordersRepo := &repo.OrdersPG{DB: db, Users: usersRepo}

	// Order events go through the outbox only when rabbit is configured.
	if cfg.Rabbit.URL != "" {
		broker, err := rabbit.Dial(cfg.Rabbit.URL)
		if err != nil {
			log.Warn().Err(err).Msg("rabbit connect failed, continuing without order events")
		} else {
			defer func() { _ = broker.Close() }()
			ordersRepo.Outbox = &repo.OutboxPG{}
			dispatcher := &outbox.Dispatcher{
				Log:          log,
				DB:           db,
				Pub:          rabbit.NewEventPublisher(broker.Ch),
				PollInterval: cfg.Outbox.PollInterval,
				BatchSize:    cfg.Outbox.BatchSize,
				MaxAttempts:  cfg.Outbox.MaxAttempts,
				BackoffMax:   cfg.Outbox.BackoffMax,
			}
			go dispatcher.Run(ctx)
		}
	}

	var sender mail.Sender
	if cfg.SMTP.Host != "" {
		sender = &mail.SMTPSender{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}
	} else {
		log.Warn().Msg("smtp not configured, using log sender")
		sender = &mail.LogSender{Log: log}
	}

	perfumesSvc := &service.Perfumes{Repo: perfumesRepo}
	ordersSvc := &service.Orders{
		Repo:  ordersRepo,
		Users: usersRepo,
		Mail:  sender,
		Log:   log,
	}

	router := httpx.NewRouter(&httpx.Handlers{
		Perfumes: &handlers.PerfumesHandler{Svc: perfumesSvc, Log: log},
		Orders:   &handlers.OrdersHandler{Svc: ordersSvc, Users: usersRepo, Log: log},
		Checkout: &handlers.CheckoutHandler{Svc: ordersSvc, Log: log},
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	cancel()
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}

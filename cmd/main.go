package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tundex/billtracker/internal/api"
	"github.com/tundex/billtracker/internal/api/events"
	"github.com/tundex/billtracker/internal/clients/auth"
	"github.com/tundex/billtracker/internal/repository"
	"github.com/tundex/billtracker/internal/service"
	"github.com/tundex/billtracker/pkg/broker"
	"github.com/tundex/billtracker/pkg/config"
	"github.com/tundex/billtracker/pkg/job"
	"github.com/tundex/billtracker/pkg/logger"
	"github.com/tundex/billtracker/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	s := service.New(repo, producer, cfg.Jobs.DebtReminderMinAge)

	eventHandler := events.NewEventHandler(s)

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroupID, cfg.Kafka.UserEventsTopic).
		Handle(cfg.Kafka.UserEventsTopic, eventHandler.OnUserEvent).
		Consume(ctx)
	defer consumer.Close()

	{
		job.NewService().
			TryRegisterJob(cfg.Jobs.DebtRemindersEnabled,
				"send debt reminders", cfg.Jobs.DebtRemindersInterval, s.RemindOutstandingDebts).
			Start(ctx)
	}

	authService := auth.NewClient(cfg.AuthServiceURL)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authService)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

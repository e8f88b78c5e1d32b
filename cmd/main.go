package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daftar/books/internal/books"
	"github.com/daftar/books/internal/config"
	"github.com/daftar/books/internal/httpapi"
	"github.com/daftar/books/internal/service/arap"
	"github.com/daftar/books/internal/storage/memory"
	pgstore "github.com/daftar/books/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg)
	slog.SetDefault(logger)

	var store httpapi.Store
	var closeFn func()

	if cfg.Database.URL != "" {
		if err := pgstore.RunMigrations(cfg.Database.URL, cfg.Database.Migrations); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
		pg, err := pgstore.Open(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = pg.Close
		store = pg
		logger.Info("storage backend: postgres")
	} else {
		store = memory.New()
		logger.Info("storage backend: memory")
	}

	if cfg.DevSeed {
		if err := seedDev(ctx, store, logger); err != nil {
			logger.Error("dev seed failed", "err", err)
		}
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: httpapi.New(store, logger,
			arap.WithRetries(cfg.ARAP.Retries),
			arap.WithBackoff(cfg.ARAP.Backoff),
		).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("books service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
	if closeFn != nil {
		closeFn()
	}
}

// seedDev creates a sample client with a few postings for local poking around.
func seedDev(ctx context.Context, store httpapi.Store, l *slog.Logger) error {
	client, err := store.CreateClient(ctx, books.Client{
		ID:             uuid.New(),
		Name:           "Demo Workshop",
		OpeningBalance: decimal.NewFromInt(250),
		Active:         true,
	})
	if err != nil {
		return err
	}
	now := time.Now()
	entry, err := store.CreateEntry(ctx, books.LedgerEntry{
		ID:               uuid.New(),
		TransactionID:    "DEMO-1",
		Type:             books.EntryTypeIncome,
		Amount:           decimal.NewFromInt(1200),
		Date:             now.AddDate(0, 0, -10),
		Category:         "sales",
		Client:           client.Name,
		ARAP:             true,
		RemainingBalance: decimal.NewFromInt(1200),
		PaymentStatus:    books.PaymentStatusUnpaid,
	})
	if err != nil {
		return err
	}
	_, err = store.CreatePayment(ctx, books.Payment{
		ID:     uuid.New(),
		Type:   books.PaymentTypeReceipt,
		Amount: decimal.NewFromInt(400),
		Date:   now.AddDate(0, 0, -3),
		Client: client.Name,
	})
	if err != nil {
		return err
	}
	l.Info("DEV seed", "client_id", client.ID.String(), "entry_id", entry.ID.String())
	return nil
}

func parseLogLevel(s string) slog.Leveler {
	switch s {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "ERR", "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLogger(cfg config.Config) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

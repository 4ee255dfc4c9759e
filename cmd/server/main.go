// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/AgentPisite999/agentpi-backend/internal/activity"
	"github.com/AgentPisite999/agentpi-backend/internal/approval"
	"github.com/AgentPisite999/agentpi-backend/internal/blob"
	awsclient "github.com/AgentPisite999/agentpi-backend/internal/common/aws"
	"github.com/AgentPisite999/agentpi-backend/internal/common/config"
	"github.com/AgentPisite999/agentpi-backend/internal/common/database"
	googleclient "github.com/AgentPisite999/agentpi-backend/internal/common/google"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/enrollment"
	"github.com/AgentPisite999/agentpi-backend/internal/mailer"
	"github.com/AgentPisite999/agentpi-backend/internal/notify"
	"github.com/AgentPisite999/agentpi-backend/internal/payment"
	"github.com/AgentPisite999/agentpi-backend/internal/screening"
	"github.com/AgentPisite999/agentpi-backend/internal/server"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.Wrap(zapLog)

	zapLog.Info("Starting enrollment server...",
		zap.String("backend", cfg.Store.Backend),
		zap.String("mailProvider", cfg.Mail.Provider),
	)

	ctx := context.Background()

	var gc *googleclient.Clients
	if cfg.Google.CredentialsJSON != "" {
		gc, err = googleclient.New(ctx, cfg.Google.CredentialsJSON)
		if err != nil {
			zapLog.Fatal("google clients failed", zap.Error(err))
		}
	}

	// --- Tabular store ---
	var tabStore store.TabularStore
	switch cfg.Store.Backend {
	case "sheets":
		if gc == nil {
			zapLog.Fatal("sheets backend requires Google credentials")
		}
		tabStore = store.NewSheetsStore(gc.Sheets, cfg.Store.Sheets.SpreadsheetID)

	case "postgres":
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Store.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()

		pgStore := store.NewPostgresStore(pg.DB)
		if err := pgStore.Init(ctx); err != nil {
			zapLog.Fatal("postgres schema init failed", zap.Error(err))
		}
		tabStore = pgStore

	case "redis":
		var rc *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			rc, err = database.NewRedis(cfg.Store.Redis)
			if err != nil {
				return err
			}
			return rc.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer rc.Close()
		tabStore = store.NewRedisStore(rc.Client)

	default:
		tabStore = store.NewMemoryStore()
	}
	tabStore = store.WithMetrics(tabStore)

	// --- Resume blob store ---
	// Resume uploads go to Drive regardless of the tabular backend, since
	// the stored links must stay publicly viewable.
	var resumeStore blob.Store
	if gc != nil {
		resumeStore = blob.NewDriveStore(gc.Drive, cfg.Google.DriveFolderID)
	} else {
		zapLog.Warn("no Google credentials configured, resume uploads disabled")
		resumeStore = blob.Discard{}
	}

	// --- Mail provider ---
	var mail mailer.Mailer
	switch cfg.Mail.Provider {
	case "ses":
		sesClient, err := awsclient.NewSESClient(ctx, cfg.Mail.SES.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		mail = mailer.NewSESMailer(sesClient)
	default:
		mail = mailer.NewSMTPMailer(cfg.Mail.SMTP)
	}

	dispatcher := notify.NewDispatcher(mail, cfg.Notifications, log)
	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	screenings := screening.NewService(tabStore, resumeStore, dispatcher, log)
	enrollments := enrollment.NewService(tabStore, gateway, dispatcher, cfg.Razorpay.KeySecret, log)
	gate := approval.NewGate(tabStore, log)
	visitors := activity.NewService(tabStore, log)

	handler := server.NewHandler(screenings, enrollments, gate, visitors, log)
	router := server.NewRouter(handler, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown incomplete", zap.Error(err))
	}

	zapLog.Info("Server stopped gracefully")
}

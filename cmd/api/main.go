package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/apostle/librarium/internal/account"
	accountStore "github.com/apostle/librarium/internal/account/store"
	"github.com/apostle/librarium/internal/borrowing"
	borrowStore "github.com/apostle/librarium/internal/borrowing/store"
	"github.com/apostle/librarium/internal/catalog"
	"github.com/apostle/librarium/internal/catalog/googlebooks"
	catalogStore "github.com/apostle/librarium/internal/catalog/store"
	"github.com/apostle/librarium/internal/config"
	"github.com/apostle/librarium/internal/database"
	"github.com/apostle/librarium/internal/fine"
	fineStore "github.com/apostle/librarium/internal/fine/store"
	librariumHttp "github.com/apostle/librarium/internal/http"
	authHandler "github.com/apostle/librarium/internal/http/auth"
	borrowingHandler "github.com/apostle/librarium/internal/http/borrowing"
	catalogHandler "github.com/apostle/librarium/internal/http/catalog"
	importHandler "github.com/apostle/librarium/internal/http/importcsv"
	"github.com/apostle/librarium/internal/importer"
	"github.com/apostle/librarium/internal/notification"
	notificationStore "github.com/apostle/librarium/internal/notification/store"
	"github.com/apostle/librarium/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	borrowRepo := borrowStore.New(db)

	sender := notification.NewSMTPSender(cfg.SMTPAddr(), cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)
	dispatcher := notification.NewDispatcher(sender, notificationStore.New(db))
	defer dispatcher.Close()

	jwtSecret := []byte(cfg.JWT.Secret)

	var (
		catalogService = catalog.NewService(
			catalogStore.New(db),
			googlebooks.New(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.APIKey),
		)
		accountService = account.NewService(accountStore.New(db), dispatcher, jwtSecret, cfg.JWT.TTL)
		fineService    = fine.NewService(fineStore.New(db), borrowRepo, dispatcher)
		borrowService  = borrowing.NewService(
			borrowRepo,
			catalogService,
			accountService,
			fineService,
			dispatcher,
			borrowing.Policy{
				PeriodDays:     cfg.Loan.PeriodDays,
				FinePerDay:     cfg.Loan.FinePerDay,
				MaxUnpaidFines: cfg.Loan.MaxUnpaidFines,
			},
		)
		importService = importer.NewService(catalogService)
	)

	var (
		authH    = authHandler.NewHandler(accountService)
		catalogH = catalogHandler.NewHandler(catalogService, borrowService)
		borrowH  = borrowingHandler.NewHandler(borrowService, fineService)
		importH  = importHandler.NewHandler(importService)
	)

	router := librariumHttp.New(authH, catalogH, borrowH, importH, jwtSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go scheduler.New(borrowService, borrowRepo, dispatcher, cfg.Loan.ScanInterval).Run(ctx)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "port", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

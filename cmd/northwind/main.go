package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/northwind-labs/northwind-api/internal/app"
	"github.com/northwind-labs/northwind-api/internal/categories"
	"github.com/northwind-labs/northwind-api/internal/platform/db"
	"github.com/northwind-labs/northwind-api/internal/products"
	"github.com/northwind-labs/northwind-api/internal/reports"
	"github.com/northwind-labs/northwind-api/internal/suppliers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	categoryService := categories.NewService(logger, categories.NewRepository(dbpool))
	supplierService := suppliers.NewService(logger, suppliers.NewRepository(dbpool))
	reportService := reports.NewService(logger, reports.NewRepository(dbpool))
	productService := products.NewService(logger, products.NewRepository(dbpool))

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		ProductHandler:  products.NewHandler(logger, productService, categoryService, supplierService),
		CategoryHandler: categories.NewHandler(logger, categoryService),
		SupplierHandler: suppliers.NewHandler(logger, supplierService),
		ReportHandler:   reports.NewHandler(logger, reportService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

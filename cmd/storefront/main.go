package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ecoezer/byaliundmesut/internal/catalog"
	"github.com/ecoezer/byaliundmesut/internal/config"
	storehttp "github.com/ecoezer/byaliundmesut/internal/http"
	"github.com/ecoezer/byaliundmesut/internal/notify"
	"github.com/ecoezer/byaliundmesut/internal/repository"
	"github.com/ecoezer/byaliundmesut/internal/service"
)

func main() {
	var cfgFile string
	flag.StringVar(&cfgFile, "config", "", "config file (default config/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	menu, err := catalog.Load(cfg.MenuFile, cfg.Zones())
	if err != nil {
		logger.Fatal("failed to load menu catalog", zap.Error(err))
	}
	logger.Info("menu catalog loaded",
		zap.Int("sections", len(menu.Sections())),
		zap.Int("zones", len(menu.Zones())))

	repo := repository.NewFileRepository(cfg.Cart.FilePath)
	cart := service.NewCartService(repo, logger)
	if err := cart.Load(context.Background()); err != nil {
		logger.Fatal("failed to restore cart", zap.Error(err))
	}
	logger.Info("cart restored", zap.Int("total_items", cart.TotalItems()))

	notifier := notify.NewEmailNotifier(cfg.Notify.URL, cfg.Notify.Token, cfg.Notify.Timeout)
	checkout := service.NewCheckoutService(cart, menu, notifier,
		cfg.Restaurant.Name, cfg.Restaurant.WhatsAppNumber, cfg.Cart.ClearGraceDelay, logger)

	router := storehttp.NewRouter(
		storehttp.NewMenuHandler(menu),
		storehttp.NewCartHandler(cart, menu, cfg.Server.RequestTimeout),
		storehttp.NewCheckoutHandler(checkout, cfg.Server.RequestTimeout),
		cfg.Server.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}

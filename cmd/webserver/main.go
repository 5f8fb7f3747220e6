package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/config"
	"github.com/DanishKodeMonkey/webserver-node-experiment/internal/logger"
	serverdebug "github.com/DanishKodeMonkey/webserver-node-experiment/internal/server-debug"
)

var (
	configPath = flag.String("config", "", "Path to config file, built-in site and no debug server if empty")
	envPath    = flag.String("env", ".env", "Path to .env file, skipped if missing")
)

func main() {
	if err := run(); err != nil {
		log.Printf("run app: %v", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := config.LoadDotEnv(*envPath); err != nil {
		return fmt.Errorf("load env: %v", err)
	}

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	// Servers.
	srvPages, pages, err := initServerPages(
		cfg.Global.IsProduction(),
		cfg.Servers.Pages.Addr,
		cfg.Pages,
	)
	if err != nil {
		return fmt.Errorf("init pages server: %v", err)
	}

	var srvDebug *serverdebug.Server
	if addr := cfg.Servers.Debug.Addr; addr != "" {
		srvDebug, err = serverdebug.New(serverdebug.NewOptions(
			addr,
			pages,
			serverdebug.WithProductionMode(cfg.Global.IsProduction()),
		))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvPages.Run(ctx) })
	if srvDebug != nil {
		eg.Go(func() error { return srvDebug.Run(ctx) })
	}

	lg.Info("server is running", zap.String("url", "http://localhost"+cfg.Servers.Pages.Addr))

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

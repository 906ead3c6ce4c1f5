package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/npezzotti/creatorhub/internal/api"
	"github.com/npezzotti/creatorhub/internal/config"
	"github.com/npezzotti/creatorhub/internal/database"
	"github.com/npezzotti/creatorhub/internal/logging"
	"github.com/npezzotti/creatorhub/internal/server"
	"github.com/npezzotti/creatorhub/internal/stats"
	"go.uber.org/zap"
)

var (
	configFile string
	envPath    string
)

func main() {
	flag.StringVar(&configFile, "config", "", "path to a YAML config file")
	flag.StringVar(&envPath, "env", ".", "directory holding .env files")
	flag.Parse()

	cfg, err := config.Load(configFile, envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	repo := database.NewMemCreatorHubRepository()
	if err := repo.Seed(); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	chatServer, err := server.NewChatServer(logger, repo, statsUpdater, cfg.DemoSenderId)
	if err != nil {
		logger.Fatal("new chat server", zap.Error(err))
	}

	srv := api.NewCreatorHubApp(mux, logger, chatServer, repo, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	go chatServer.Run()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Info("received signal", zap.Stringer("signal", sig))
	case err := <-errCh:
		logger.Error("server", zap.Error(err))
	}

	shutDownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Error("HTTP server shutdown", zap.Error(err))
	}

	logger.Info("shutting down chat server")
	if err := chatServer.Shutdown(shutDownCtx); err != nil {
		logger.Error("chat server shutdown", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"

	"go.uber.org/zap"

	"github.com/rawbytedev/guid64/internal/config"
	"github.com/rawbytedev/guid64/internal/harness"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("guid64: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		config.Exitf("guid64: set up logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.PprofAddr != "" {
		go func() {
			err := http.ListenAndServe(cfg.PprofAddr, nil)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("pprof listener stopped", zap.Error(err))
			}
		}()
	}

	if cfg.MemProfile != "" {
		runtime.MemProfileRate = 1
	}

	r := &harness.Runner{Logger: logger, Config: cfg}
	if _, err := r.Run(ctx); err != nil {
		return err
	}

	if cfg.MemProfile == "" {
		return nil
	}
	f, err := os.Create(cfg.MemProfile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return err
	}
	logger.Info("wrote heap profile", zap.String("path", cfg.MemProfile))
	return nil
}

package server

import (
	"context"
	stderrors "errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"expense-split/internal/config"
)

// Run serves the API on cfg.Server.Addr until ctx is cancelled, then shuts
// down gracefully within cfg.Server.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, version string, logger *zap.Logger) error {
	upgradePercent := cfg.Flight.UpgradeCompanyPercent
	handler := New(Options{
		Version:               version,
		Currency:              cfg.Output.Currency,
		UpgradeCompanyPercent: &upgradePercent,
		MetricsEnabled:        cfg.Server.MetricsEnabled,
		Logger:                logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server started", zap.String("addr", cfg.Server.Addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

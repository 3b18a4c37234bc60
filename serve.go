package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpLayer "pyme-calc/http"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PYME_PORT)")
	return cmd
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("error closing resources", "error", err)
		}
	}()

	httpLogger := logger.WithComponent("http")
	handlers := httpLayer.Handlers{
		Formulas:   httpLayer.NewFormulaHandler(a.formulas, httpLogger),
		Projection: httpLayer.NewProjectionHandler(a.projection, httpLogger),
		Scenarios:  httpLayer.NewScenarioHandler(a.scenarios, httpLogger),
		Taxes:      httpLayer.NewTaxHandler(a.taxes, httpLogger),
		Financing:  httpLayer.NewFinancingHandler(a.loans, a.financing, httpLogger),
		History:    httpLayer.NewHistoryHandler(a.history, httpLogger),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpLayer.NewRouter(handlers, rateLimiter, httpLogger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API corriendo", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server exited")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"

	"pyme-calc/config"
	"pyme-calc/logging"
	"pyme-calc/repository"
	"pyme-calc/service"
)

// app holds the wired services shared by the server and the CLI commands.
type app struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository

	formulas   *service.FormulaService
	projection *service.ProjectionService
	scenarios  *service.ScenarioService
	taxes      *service.TaxService
	loans      *service.LoanService
	financing  *service.FinancingService
	history    *service.HistoryService

	closers []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*app, error) {
	a := &app{}

	switch cfg.DataBackend {
	case "sqlite":
		repo, err := repository.NewCalculationRepositorySQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		a.repo = repo
		logger.Info("history backend", "backend", "sqlite", "path", cfg.SQLitePath)
	default:
		a.repo = repository.NewCalculationRepositoryMemory()
		logger.Debug("history backend", "backend", "memory")
	}
	a.closers = append(a.closers, a.repo.Close)

	if cfg.RedisAddr != "" {
		cache, err := repository.NewRedisCache(ctx, repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.cache = cache
		a.closers = append(a.closers, cache.Close)
		logger.Info("scenario cache", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		a.cache = repository.NewMemoryCache(cfg.CacheTTL)
	}

	svcLogger := logger.WithComponent("service")
	a.formulas = service.NewFormulaService(a.repo, svcLogger)
	a.projection = service.NewProjectionService(a.repo, svcLogger, cfg.BreakEvenHorizon)
	a.scenarios = service.NewScenarioService(a.repo, a.cache, svcLogger)
	a.taxes = service.NewTaxService(a.repo, svcLogger)
	a.loans = service.NewLoanService(a.repo, svcLogger)
	a.financing = service.NewFinancingService(a.repo, svcLogger)
	a.history = service.NewHistoryService(a.repo)
	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pyme-calc/config"
	"pyme-calc/logging"
)

var (
	cfgFile   string
	envFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "pyme-calc",
		Short: "Proyecciones financieras e impuestos para PyMEs argentinas",
		Long: `pyme-calc proyecta ingresos y ganancias bajo inflación, compara escenarios,
líneas de financiamiento y regímenes impositivos (monotributo / general).

Los montos se ingresan en formato argentino: 1.500.000,50`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file (default: .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(breakEvenCmd())
	rootCmd.AddCommand(scenariosCmd())
	rootCmd.AddCommand(taxesCmd())
	rootCmd.AddCommand(financingCmd())
	rootCmd.AddCommand(historyCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(config.Options{EnvFile: envFile, ConfigFile: cfgFile})
	if err != nil {
		return err
	}

	// Flags win over env and config file
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if logFormat != "" {
		loaded.LogFormat = logFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(logging.Config{
		Level:     loaded.LogLevel,
		Format:    loaded.LogFormat,
		Component: cmd.Name(),
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logging.SetDefault(l)

	cfg, logger = loaded, l
	return nil
}

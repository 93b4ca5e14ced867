package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zenith-dashboard/internal/adapters/coda"
	"zenith-dashboard/internal/config"
	"zenith-dashboard/internal/domain/biometrics"
	"zenith-dashboard/internal/platform/logger"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "zenith",
	Short: "Zenith OS - Mission Control API",
	Long: `Backend del dashboard diario de Zenith OS.

Sirve el rol del día y la última lectura biométrica (HRV, sueño) tomada
de la tabla Biometrics de un doc de Coda.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("ZENITH_CONFIG"), "archivo YAML de configuración")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log en nivel debug")

	rootCmd.AddCommand(serveCmd, probeCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app agrupa lo que comparten serve y probe.
type app struct {
	cfg        *config.Config
	log        logger.Logger
	biometrics *biometrics.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	opts := cfg.LoggerOptions()
	if verbose {
		opts.Level = logger.Debug
	}
	log := logger.New(opts)

	client, err := coda.NewClient(cfg.CodaClientConfig())
	if err != nil {
		return nil, fmt.Errorf("coda client: %w", err)
	}
	if !client.IsConfigured() {
		log.Warn("coda credentials missing; biometrics will report offline", map[string]any{
			"missing": cfg.CodaClientConfig().Credentials.Missing(),
		})
	}

	return &app{
		cfg:        cfg,
		log:        log,
		biometrics: biometrics.NewService(client, log),
	}, nil
}

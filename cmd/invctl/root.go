package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/bootstrap"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/interfaces/cli"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

var (
	apiURL   string
	logLevel string

	cfg *config.Config
	svc *bootstrap.Services
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "invctl",
	Short: "Cliente de terminal para la API de inventario",
	Long: `invctl lista, crea y elimina usuarios, productos y ventas contra la
API REST de inventario, y exporta cualquier listado a PDF.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initEnv)
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "URL base de la API (por defecto API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nivel de log: trace, debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(totalCmd)
}

// initEnv carga .env si existe; las variables ya definidas tienen prioridad.
func initEnv() {
	_ = godotenv.Load()
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if apiURL != "" {
		cfg.API.BaseURL = strings.TrimRight(apiURL, "/")
	}
	log = logger.New(logger.Config{Env: "development", Level: logLevel, Output: os.Stderr})
	svc = bootstrap.New(cfg, log)
	return nil
}

// controllerFor arma el controlador del tipo con la salida de terminal.
func controllerFor(cmd *cobra.Command, d *entity.Descriptor, bind entitysync.Bindings) *entitysync.Controller {
	if bind.Notifier == nil {
		bind.Notifier = cli.NewPrinterNotifier(cmd.OutOrStdout())
	}
	return entitysync.NewController(d, svc.Fetcher, svc.Mutator, bind, bootstrap.ControllerOptions(cfg)...)
}

func lookup(name string) (*entity.Descriptor, error) {
	return svc.Registry.Lookup(name)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Package bootstrap arma los servicios compartidos por la consola web y el CLI.
package bootstrap

import (
	"github.com/jhoicas/inventario-console/internal/application/entitysync"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/infrastructure/apiclient"
	infrapdf "github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Services dependencias listas para usar.
type Services struct {
	Registry  *entity.Registry
	API       *apiclient.Client
	Fetcher   *entitysync.Fetcher
	Mutator   *entitysync.Mutator
	Board     *entitysync.NoticeBoard
	Selectors *entitysync.SaleSelectors
	Reports   *infrapdf.MarotoReportGenerator
}

// New construye los servicios a partir de la configuración.
func New(cfg *config.Config, log *logger.Logger) *Services {
	registry := entity.NewRegistry(entity.Options{
		UserPayloadStyle: entity.PayloadStyle(cfg.API.UserPayloadStyle),
	})

	rest := apiclient.NewRESTClient(cfg.API.BaseURL, cfg.API.Timeout, nil)
	api := apiclient.New(rest, log.Named("apiclient"))

	fetcher := entitysync.NewFetcher(api, log.Named("fetcher"))
	products, _ := registry.Get(entity.KindProduct)
	users, _ := registry.Get(entity.KindUser)

	return &Services{
		Registry:  registry,
		API:       api,
		Fetcher:   fetcher,
		Mutator:   entitysync.NewMutator(api, log.Named("mutator")),
		Board:     entitysync.NewNoticeBoard(cfg.Lists.NotificationTTL, entitysync.SystemClock{}),
		Selectors: entitysync.NewSaleSelectors(fetcher, products, users, entitysync.NewPriceBook()),
		Reports:   infrapdf.NewMarotoReportGenerator(rest.BaseURL()),
	}
}

// ControllerOptions opciones de controlador derivadas de la configuración.
func ControllerOptions(cfg *config.Config) []entitysync.Option {
	return []entitysync.Option{entitysync.WithFailureState(cfg.Lists.DistinguishFailures)}
}

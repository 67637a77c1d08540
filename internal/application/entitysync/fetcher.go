// Package entitysync sincroniza un listado de entidades remotas con su vista:
// carga, renderizado, creación y eliminación con recarga completa tras cada mutación.
package entitysync

import (
	"context"
	"errors"

	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Fetcher obtiene colecciones de la API. Política "fallar a vacío": cualquier fallo
// (transporte, estado no exitoso, cuerpo que no es una lista) produce una colección
// vacía y queda registrado en el log; nunca se propaga al renderizado.
type Fetcher struct {
	api ports.InventoryAPI
	log *logger.Logger
}

// NewFetcher construye el fetcher.
func NewFetcher(api ports.InventoryAPI, log *logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{api: api, log: log}
}

// FetchCollection devuelve la colección del endpoint o una colección vacía si algo falla.
func (f *Fetcher) FetchCollection(ctx context.Context, endpoint string) entity.Collection {
	c, _ := f.FetchDetailed(ctx, endpoint)
	return c
}

// FetchDetailed igual que FetchCollection pero expone la causa del fallo.
// La colección nunca es nil.
func (f *Fetcher) FetchDetailed(ctx context.Context, endpoint string) (entity.Collection, error) {
	raw, err := f.api.List(ctx, endpoint)
	if err != nil {
		f.log.Error().Err(err).Str("endpoint", endpoint).Msg("error al obtener datos")
		return entity.Collection{}, err
	}

	c, err := entity.DecodeCollection(raw)
	if err != nil {
		ev := f.log.Error()
		if errors.Is(err, domain.ErrNotAList) {
			ev = f.log.Warn()
		}
		ev.Err(err).Str("endpoint", endpoint).Msg("respuesta de listado descartada, se trata como lista vacía")
		return entity.Collection{}, err
	}
	return c, nil
}

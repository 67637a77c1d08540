package ports

import (
	"context"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// APIResponse respuesta cruda de una mutación: la decisión de éxito (201/204) es del llamador.
type APIResponse struct {
	Status int
	Body   string
}

// InventoryAPI puerto de salida hacia la API REST de inventario.
// Los errores de transporte deben envolver domain.ErrTransport.
type InventoryAPI interface {
	// List hace GET sobre la ruta de colección y devuelve el cuerpo.
	// Un estado fuera de 2xx devuelve *domain.StatusError.
	List(ctx context.Context, path string) ([]byte, error)
	// Create hace POST con el payload en JSON.
	Create(ctx context.Context, path string, payload any) (*APIResponse, error)
	// Delete hace DELETE sobre la ruta singular del recurso.
	Delete(ctx context.Context, path string) (*APIResponse, error)
}

// Notifier canal de notificaciones visibles para el usuario, uno por tipo de entidad.
type Notifier interface {
	Notify(kind entity.Kind, n dto.Notification)
}

// Confirmer pregunta bloqueante sí/no antes de una operación destructiva.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ReportGenerator genera un documento a partir de un listado renderizado.
type ReportGenerator interface {
	GenerateListReport(ctx context.Context, list dto.ListSnapshot) ([]byte, error)
}

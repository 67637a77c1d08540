package entitysync

import (
	"sync"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ListView destino de renderizado de un listado. Cada render reemplaza todo el contenido.
type ListView struct {
	mu   sync.RWMutex
	snap dto.ListSnapshot
}

// NewListView crea una vista vacía.
func NewListView() *ListView {
	return &ListView{}
}

// Snapshot copia del contenido actual.
func (v *ListView) Snapshot() dto.ListSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := v.snap
	out.Items = append([]dto.ListItem(nil), v.snap.Items...)
	return out
}

func (v *ListView) replace(s dto.ListSnapshot) {
	v.mu.Lock()
	v.snap = s
	v.mu.Unlock()
}

// Renderer proyecta una colección sobre un ListView.
type Renderer struct{}

// Render limpia el destino y muestra la colección, o el placeholder si está vacía.
func (r Renderer) Render(target *ListView, d *entity.Descriptor, c entity.Collection) {
	r.RenderState(target, d, entity.StateFor(c))
}

// RenderState renderiza cualquier DisplayState (Loading, Empty, Populated, Error).
func (Renderer) RenderState(target *ListView, d *entity.Descriptor, state entity.DisplayState) {
	snap := dto.ListSnapshot{Kind: d.Kind, Title: d.Title, State: state.Kind}

	switch state.Kind {
	case entity.StateLoading:
		snap.Message = d.LoadingText
	case entity.StateError:
		snap.Message = state.Message
	case entity.StatePopulated:
		if len(state.Collection) == 0 {
			snap.State = entity.StateEmpty
			snap.Message = d.Placeholder
			break
		}
		snap.Items = make([]dto.ListItem, 0, len(state.Collection))
		for _, rec := range state.Collection {
			s := d.Summarize(rec)
			snap.Items = append(snap.Items, dto.ListItem{
				Headline: s.Headline,
				Details:  s.Details,
				Delete:   dto.DeleteControl{ID: d.IDOf(rec), Type: d.Kind},
			})
		}
	default:
		snap.State = entity.StateEmpty
		snap.Message = d.Placeholder
	}

	target.replace(snap)
}

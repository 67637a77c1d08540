package entitysync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

const (
	// DeletedMessage notificación tras una eliminación exitosa.
	DeletedMessage = "Eliminación exitosa."
	// RouteNotFoundMessage sustituye páginas HTML de error 404 en la notificación.
	RouteNotFoundMessage = "Error 404: La ruta de la API no se encontró. Verifique el servidor."

	maxDetailRunes = 300
)

// Mutator envía altas y bajas. Éxito estricto: 201 para crear, 204 para eliminar;
// cualquier otro código (incluido otro 2xx) es un *domain.StatusError.
type Mutator struct {
	api ports.InventoryAPI
	log *logger.Logger
	now func() time.Time
}

// NewMutator construye el mutator.
func NewMutator(api ports.InventoryAPI, log *logger.Logger) *Mutator {
	if log == nil {
		log = logger.Nop()
	}
	return &Mutator{api: api, log: log, now: time.Now}
}

// WithClock reemplaza la fuente de "ahora" (fechas por defecto del payload).
func (m *Mutator) WithClock(now func() time.Time) *Mutator {
	m.now = now
	return m
}

// Create convierte el formulario al payload del tipo y lo envía a la ruta de colección.
// Los errores de conversión se devuelven sin llamar a la API.
func (m *Mutator) Create(ctx context.Context, d *entity.Descriptor, form entity.FormValues) error {
	payload, err := d.BuildPayload(form, m.now())
	if err != nil {
		return err
	}

	resp, err := m.api.Create(ctx, d.CollectionPath, payload)
	if err != nil {
		m.log.Error().Err(err).Str("kind", string(d.Kind)).Msg("error de creación")
		return err
	}
	if resp.Status != http.StatusCreated {
		m.log.Warn().Int("status", resp.Status).Str("kind", string(d.Kind)).Msg("creación rechazada por la API")
		return &domain.StatusError{Op: "create", Status: resp.Status, Body: resp.Body}
	}
	return nil
}

// Remove elimina el recurso en la ruta singular y, solo si la API responde 204, invoca onSuccess.
func (m *Mutator) Remove(ctx context.Context, d *entity.Descriptor, id string, onSuccess func()) error {
	resp, err := m.api.Delete(ctx, d.DeletePath(id))
	if err != nil {
		m.log.Error().Err(err).Str("kind", string(d.Kind)).Str("id", id).Msg("error al eliminar")
		return err
	}
	if resp.Status != http.StatusNoContent {
		m.log.Warn().Int("status", resp.Status).Str("kind", string(d.Kind)).Str("id", id).Msg("eliminación rechazada por la API")
		return &domain.StatusError{Op: "delete", Status: resp.Status, Body: resp.Body}
	}
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

// CreateFailureText texto de la notificación de una creación fallida.
func CreateFailureText(d *entity.Descriptor, err error) string {
	var se *domain.StatusError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fmt.Sprintf("%s, verifica los campos (%s)", d.CreateFailed,
			strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": "))
	case errors.As(err, &se):
		if detail := serverDetail(se.Body); detail != "" {
			return d.CreateFailed + ": " + detail
		}
		return d.CreateFailed + ", verifica los campos"
	case errors.Is(err, domain.ErrTransport):
		return d.CreateFailed + ": " + domain.ErrTransport.Error()
	default:
		return d.CreateFailed + ": " + err.Error()
	}
}

// DeleteFailureText texto de la notificación de una eliminación fallida.
// Si el mensaje contiene "404" se asume una página de error del servidor y se
// muestra un texto genérico en lugar del marcado.
func DeleteFailureText(err error) string {
	var msg string
	var se *domain.StatusError
	if errors.As(err, &se) {
		text := strings.TrimSpace(se.Body)
		if text == "" {
			text = fmt.Sprintf("%d %s", se.Status, http.StatusText(se.Status))
		}
		msg = "Fallo al eliminar: " + text
	} else {
		msg = err.Error()
	}

	if strings.Contains(msg, "404") {
		return RouteNotFoundMessage
	}
	return "Error: " + truncate(msg)
}

// serverDetail extrae el texto útil de un cuerpo de error: message/error de un JSON,
// o el texto plano. HTML y cuerpos vacíos no son legibles y devuelven "".
func serverDetail(body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || looksLikeHTML(trimmed) {
		return ""
	}
	if strings.HasPrefix(trimmed, "{") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			for _, key := range []string{"message", "error", "detail"} {
				if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
					return truncate(strings.TrimSpace(s))
				}
			}
		}
	}
	return truncate(trimmed)
}

func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") || strings.Contains(lower, "</")
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxDetailRunes {
		return s
	}
	return string(r[:maxDetailRunes]) + "…"
}

// Package cli salidas de terminal del CLI: listado, notificaciones y confirmación.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// RenderList dibuja un listado para la terminal. Con estado distinto de Populated
// se muestra el mensaje del estado (placeholder, carga o error).
func RenderList(s dto.ListSnapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n")

	if s.State != entity.StatePopulated || len(s.Items) == 0 {
		style := placeholderStyle
		if s.State == entity.StateError {
			style = errorStyle
		}
		b.WriteString(style.Render(s.Message))
		b.WriteString("\n")
		return b.String()
	}

	for _, it := range s.Items {
		lines := []string{headlineStyle.Render(it.Headline)}
		for _, d := range it.Details {
			lines = append(lines, detailStyle.Render(d))
		}
		lines = append(lines, detailStyle.Render(fmt.Sprintf("[eliminar: %s %s]", it.Delete.Type, it.Delete.ID)))
		b.WriteString(itemStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d registro(s)\n", len(s.Items))
	return b.String()
}

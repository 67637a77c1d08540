package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// PrinterNotifier imprime cada notificación; en la terminal no hay nada que limpiar.
type PrinterNotifier struct {
	mu   sync.Mutex
	out  io.Writer
	last dto.Notification
}

// NewPrinterNotifier escribe en out.
func NewPrinterNotifier(out io.Writer) *PrinterNotifier {
	return &PrinterNotifier{out: out}
}

func (p *PrinterNotifier) Notify(_ entity.Kind, n dto.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = n
	style := errorStyle
	if n.Success {
		style = successStyle
	}
	fmt.Fprintln(p.out, style.Render(n.Text))
}

// Last última notificación recibida.
func (p *PrinterNotifier) Last() dto.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

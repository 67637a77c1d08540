package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptConfirmer pregunta sí/no en la terminal. Cualquier respuesta distinta de
// s/si/sí/y/yes (incluido EOF) cuenta como rechazo.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer lee de in y escribe la pregunta en out.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(p.out, promptStyle.Render(prompt)+" [s/N]: ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}

// AlwaysConfirm confirmador para --yes.
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(string) bool { return true }

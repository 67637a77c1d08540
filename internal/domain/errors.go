package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrTransport      = errors.New("la API no respondió")
	ErrStatusMismatch = errors.New("código de estado inesperado")
	ErrDecode         = errors.New("respuesta no decodificable")
	ErrNotAList       = errors.New("la respuesta no es una lista")
	ErrDeclined       = errors.New("operación cancelada por el usuario")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnknownEntity  = errors.New("entidad desconocida")
)

// StatusError respuesta recibida con un código distinto al esperado para la operación.
// Body conserva el texto devuelto por el servidor para mostrarlo al usuario.
type StatusError struct {
	Op     string // list, create, delete
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d %s", e.Op, e.Status, http.StatusText(e.Status))
}

// Is permite errors.Is(err, ErrStatusMismatch).
func (e *StatusError) Is(target error) bool {
	return target == ErrStatusMismatch
}

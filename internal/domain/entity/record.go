package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-console/internal/domain"
)

// Kind tipo de entidad gestionada por la API.
type Kind string

const (
	KindUser    Kind = "user"
	KindProduct Kind = "product"
	KindSale    Kind = "sale"
)

// Record registro opaco tal como lo devuelve la API (campo -> valor primitivo).
// Los números se conservan como json.Number para no perder el formato del servidor.
type Record map[string]any

// Collection lista ordenada de registros en el orden del servidor.
type Collection []Record

// Has indica si el campo existe y no es null.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// Text devuelve la representación textual de un campo; vacío si no existe o es null.
func (r Record) Text(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch typed := v.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		raw, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}
		return string(raw)
	}
}

// TextOr devuelve el primer campo no vacío de la lista.
func (r Record) TextOr(fields ...string) string {
	for _, f := range fields {
		if s := r.Text(f); s != "" {
			return s
		}
	}
	return ""
}

// DecodeCollection decodifica el cuerpo de un listado.
// Devuelve ErrDecode si el JSON es inválido o va seguido de más contenido, y ErrDecode+ErrNotAList si el valor
// decodificado no es un arreglo (null, objeto, escalar). Los elementos que no son
// objetos se descartan.
func DecodeCollection(raw []byte) (Collection, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, fmt.Errorf("%w: contenido adicional tras el JSON", domain.ErrDecode)
	}

	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w (%s)", domain.ErrDecode, domain.ErrNotAList, describeJSON(value))
	}

	out := make(Collection, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Record(obj))
	}
	return out, nil
}

func describeJSON(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "objeto"
	case string:
		return "string"
	case json.Number:
		return "número"
	case bool:
		return "booleano"
	default:
		return strings.TrimSpace(fmt.Sprintf("%T", v))
	}
}

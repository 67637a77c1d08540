package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-console/internal/domain"
)

// isoMillis formato UTC con milisegundos que espera la API (RFC3339).
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// entradas de fecha aceptadas: datetime-local del navegador, RFC3339 y solo fecha.
var dateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// FixedPoint convierte un texto numérico a decimal de dos cifras ("2.5" -> "2.50").
func FixedPoint(field, text string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return "", fmt.Errorf("%w: %s debe ser numérico", domain.ErrInvalidInput, field)
	}
	return d.StringFixed(2), nil
}

// Integer convierte un texto a entero; los decimales se truncan. Valores fuera
// del rango de int64 se rechazan.
func Integer(field, text string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser entero", domain.ErrInvalidInput, field)
	}
	if !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s fuera de rango", domain.ErrInvalidInput, field)
	}
	return d.IntPart(), nil
}

// Timestamp normaliza una fecha del formulario a UTC; vacío equivale a now.
// Las fechas sin zona se interpretan en la zona de now.
func Timestamp(field, text string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return now.UTC().Format(isoMillis), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return t.UTC().Format(isoMillis), nil
		}
	}
	return "", fmt.Errorf("%w: %s no es una fecha válida", domain.ErrInvalidInput, field)
}

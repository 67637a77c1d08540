package apiclient

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// maxBodyBytes límite de lectura de cualquier respuesta.
const maxBodyBytes = 4 << 20

// readBody lee el cuerpo (limitado) y lo convierte a UTF-8 si el Content-Type
// declara un charset Latin-1 o Windows-1252, como hacen algunos servidores legados.
func readBody(r io.Reader, contentType string) ([]byte, error) {
	limited := io.LimitReader(r, maxBodyBytes)
	if dec := decoderFor(contentType); dec != nil {
		return io.ReadAll(transform.NewReader(limited, dec.NewDecoder()))
	}
	return io.ReadAll(limited)
}

func decoderFor(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}
	switch strings.ToLower(params["charset"]) {
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	default:
		return nil
	}
}

// Package apiclient adaptador HTTP del puerto InventoryAPI.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-console/internal/application/ports"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa InventoryAPI.
var _ ports.InventoryAPI = (*Client)(nil)

const requestIDHeader = "X-Request-ID"

// Client habla JSON con la API REST del inventario.
type Client struct {
	rest *RESTClient
	log  *logger.Logger
}

// New construye el cliente sobre un RESTClient ya configurado.
func New(rest *RESTClient, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{rest: rest, log: log}
}

// List GET del endpoint. Solo un 2xx devuelve el cuerpo; otro estado es *domain.StatusError.
func (c *Client) List(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.Status < 200 || resp.Status > 299 {
		return nil, &domain.StatusError{Op: "list", Status: resp.Status, Body: resp.Body}
	}
	return []byte(resp.Body), nil
}

// Create POST con el payload en JSON. El estado se devuelve sin interpretar.
func (c *Client) Create(ctx context.Context, path string, payload any) (*ports.APIResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: serializar payload: %v", domain.ErrInvalidInput, err)
	}
	return c.send(ctx, http.MethodPost, path, body)
}

// Delete DELETE del recurso. El estado se devuelve sin interpretar.
func (c *Client) Delete(ctx context.Context, path string) (*ports.APIResponse, error) {
	return c.send(ctx, http.MethodDelete, path, nil)
}

func (c *Client) send(ctx context.Context, method, path string, body []byte) (*ports.APIResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := c.rest.NewRequest(ctx, method, path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.rest.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("petición fallida")
		return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := readBody(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %w", domain.ErrTransport, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", reqID).
		Msg("respuesta de la API")

	return &ports.APIResponse{Status: resp.StatusCode, Body: string(raw)}, nil
}

// Package apiclient es el consumidor REST del API de gestión comercial:
// servicios tipados por colección y una pantalla (Screen) que mantiene un
// espejo local sincronizado con las operaciones confirmadas por el servidor.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError error devuelto por el servidor (cuerpo estructurado {code, message}).
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP del API. Las operaciones se usan de forma secuencial:
// no hay reintentos ni timeouts propios más allá del contexto recibido.
type Client struct {
	baseURL string
	hc      *http.Client

	Salesmen   *SalesmenService
	Clients    *ClientsService
	Products   *ProductsService
	Categories *CategoriesService
}

// Option ajusta la construcción del cliente.
type Option func(*Client)

// WithHTTPClient sustituye el http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New construye el cliente apuntando a baseURL (ej. http://localhost:5000).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Salesmen = &SalesmenService{res: resource[Salesman]{c: c, path: "/api/salesmen"}}
	c.Clients = &ClientsService{res: resource[ClientRecord]{c: c, path: "/api/clients"}}
	c.Products = &ProductsService{res: resource[Product]{c: c, path: "/api/products"}}
	c.Categories = &CategoriesService{res: resource[Category]{c: c, path: "/api/categories"}}
	return c
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si no es nil).
// Un estado >= 400 se convierte en *APIError con el cuerpo del servidor.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar petición: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decodificar respuesta: %w", err)
		}
	}
	return nil
}

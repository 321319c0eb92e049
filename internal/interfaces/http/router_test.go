package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial-api/internal/application/dto"
	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
	"github.com/jhoicas/gestion-comercial-api/internal/infrastructure/memory"
	apihttp "github.com/jhoicas/gestion-comercial-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		SalesmanUC: usecase.NewSalesmanUseCase(memory.NewSalesmanRepository()),
		ClientUC:   usecase.NewClientUseCase(memory.NewClientRepository()),
		ProductUC:  usecase.NewProductUseCase(memory.NewProductRepository()),
		CategoryUC: usecase.NewCategoryUseCase(memory.NewCategoryRepository()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func validClientBody(ruc string) map[string]any {
	return map[string]any{
		"ruc":              ruc,
		"fullName":         "Distribuidora El Sol S.A.C.",
		"shortName":        "El Sol",
		"contact1":         "María Quispe",
		"phone1":           "987654321",
		"address":          "Av. Los Incas 1234",
		"district":         "San Juan de Lurigancho",
		"province":         "Lima",
		"department":       "Lima",
		"assignedSalesman": "11111111-1111-1111-1111-111111111111",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Ciclo CRUD completo sobre /api/clients con los códigos de estado esperados.
func TestRouter_ClientesCicloCompleto(t *testing.T) {
	app := newTestApp(t)

	status, raw := doJSON(t, app, "POST", "/api/clients", validClientBody("20123456789"))
	require.Equal(t, fiber.StatusCreated, status)

	var created dto.ClientResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "20123456789", created.RUC)

	status, raw = doJSON(t, app, "GET", "/api/clients/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var got dto.ClientResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, created.ID, got.ID)

	status, raw = doJSON(t, app, "PUT", "/api/clients/"+created.ID, map[string]any{"phone1": "999888777"})
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "999888777", got.Phone1)
	assert.Equal(t, "20123456789", got.RUC)

	status, raw = doJSON(t, app, "GET", "/api/clients", nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []dto.ClientResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)

	status, raw = doJSON(t, app, "DELETE", "/api/clients/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var msg dto.MessageResponse
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "cliente eliminado correctamente", msg.Message)

	status, _ = doJSON(t, app, "GET", "/api/clients/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

// Campo requerido ausente: 400 con código VALIDATION y sin persistir.
func TestRouter_ClienteRequeridoAusente(t *testing.T) {
	app := newTestApp(t)

	body := validClientBody("20123456789")
	delete(body, "address")
	status, raw := doJSON(t, app, "POST", "/api/clients", body)
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Contains(t, errResp.Message, "address")

	status, raw = doJSON(t, app, "GET", "/api/clients", nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []dto.ClientResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Empty(t, list)
}

// RUC duplicado responde 400 (no 409) con código DUPLICATE.
func TestRouter_ClienteRUCDuplicado(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/clients", validClientBody("20123456789"))
	require.Equal(t, fiber.StatusCreated, status)

	status, raw := doJSON(t, app, "POST", "/api/clients", validClientBody("20123456789"))
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "DUPLICATE", errResp.Code)
}

// Cuerpo no-JSON: 400 INVALID_BODY.
func TestRouter_CuerpoInvalido(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/products", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INVALID_BODY", errResp.Code)
}

// Un campo numérico textualmente no numérico no supera la decodificación
// del cuerpo: 400 INVALID_BODY y nada se persiste.
func TestRouter_ProductoNumericoNoNumerico(t *testing.T) {
	app := newTestApp(t)

	body := map[string]any{
		"name":      "Aceite vegetal 1L",
		"code":      "AC-001",
		"catPrice":  "abc",
		"distPrice": 19.90,
		"masterQ":   12,
	}
	status, raw := doJSON(t, app, "POST", "/api/products", body)
	require.Equal(t, fiber.StatusBadRequest, status)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INVALID_BODY", errResp.Code)

	body["catPrice"] = 25.50
	body["masterQ"] = "doce"
	status, raw = doJSON(t, app, "POST", "/api/products", body)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INVALID_BODY", errResp.Code)

	status, raw = doJSON(t, app, "GET", "/api/products", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, "[]", string(raw))
}

// Operaciones sobre IDs inexistentes: 404 en GET, PUT y DELETE.
func TestRouter_IDInexistente(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/salesmen/doesnotexist", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw := doJSON(t, app, "PUT", "/api/salesmen/doesnotexist", map[string]any{"name": "Nadie"})
	assert.Equal(t, fiber.StatusNotFound, status)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)

	status, _ = doJSON(t, app, "DELETE", "/api/categories/doesnotexist", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

// Producto con código duplicado: 400 DUPLICATE y el primero queda intacto.
func TestRouter_ProductoCodigoDuplicado(t *testing.T) {
	app := newTestApp(t)

	body := map[string]any{
		"name":      "Aceite vegetal 1L",
		"code":      "AC-001",
		"catPrice":  25.50,
		"distPrice": 19.90,
		"masterQ":   12,
	}
	status, raw := doJSON(t, app, "POST", "/api/products", body)
	require.Equal(t, fiber.StatusCreated, status)
	var first dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &first))

	body["name"] = "Otro producto"
	status, raw = doJSON(t, app, "POST", "/api/products", body)
	require.Equal(t, fiber.StatusBadRequest, status)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "DUPLICATE", errResp.Code)

	status, raw = doJSON(t, app, "GET", "/api/products/"+first.ID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Aceite vegetal 1L", got.Name)
}

// Listado de categorías vacío devuelve un arreglo JSON vacío, no null.
func TestRouter_ListadoVacio(t *testing.T) {
	app := newTestApp(t)

	status, raw := doJSON(t, app, "GET", "/api/categories", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, "[]", string(raw))
}

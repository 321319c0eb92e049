package apiclient_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
	"github.com/jhoicas/gestion-comercial-api/internal/infrastructure/memory"
	apihttp "github.com/jhoicas/gestion-comercial-api/internal/interfaces/http"
	"github.com/jhoicas/gestion-comercial-api/pkg/apiclient"
)

// newServer levanta el API completo sobre los almacenes en memoria y devuelve
// un cliente apuntando a él.
func newServer(t *testing.T) *apiclient.Client {
	t.Helper()
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		SalesmanUC: usecase.NewSalesmanUseCase(memory.NewSalesmanRepository()),
		ClientUC:   usecase.NewClientUseCase(memory.NewClientRepository()),
		ProductUC:  usecase.NewProductUseCase(memory.NewProductRepository()),
		CategoryUC: usecase.NewCategoryUseCase(memory.NewCategoryRepository()),
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, apiclient.WithHTTPClient(srv.Client()))
}

func productParams(code string) apiclient.ProductParams {
	return apiclient.ProductParams{
		Name:      "Aceite vegetal 1L",
		Code:      code,
		CatPrice:  decimal.NewFromFloat(25.50),
		DistPrice: decimal.NewFromFloat(19.90),
		MasterQ:   12,
	}
}

// Flujo de pantalla completo: montar, crear, editar y eliminar, con el espejo
// reflejando cada operación confirmada por el servidor.
func TestScreen_FlujoCategoria(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	screen := c.Categories.NewScreen()
	require.NoError(t, screen.Mount(ctx))
	assert.Equal(t, 0, screen.Mirror().Len())

	// Alta: el documento confirmado entra al espejo sin refetch.
	created, err := screen.Submit(ctx, apiclient.CategoryParams{Category: "Abarrotes"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, screen.Mirror().Len())

	// Edición: Edit fija el borrador y Submit pasa a ser una actualización.
	draft, ok := screen.Edit(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Abarrotes", draft.Category)
	assert.Equal(t, created.ID, screen.Editing())

	updated, err := screen.Submit(ctx, apiclient.CategoryParams{Category: "Limpieza"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Empty(t, screen.Editing(), "el borrador se descarta tras confirmar")
	require.Equal(t, 1, screen.Mirror().Len(), "editar reemplaza, nunca duplica")
	assert.Equal(t, "Limpieza", screen.Mirror().All()[0].Category)

	// Borrado: retira del espejo solo tras confirmar el servidor.
	require.NoError(t, screen.Delete(ctx, created.ID))
	assert.Equal(t, 0, screen.Mirror().Len())
}

// Un Submit fallido no toca el espejo ni el borrador.
func TestScreen_FalloNoTocaEspejo(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	screen := c.Products.NewScreen()
	require.NoError(t, screen.Mount(ctx))

	_, err := screen.Submit(ctx, productParams("AC-001"))
	require.NoError(t, err)

	// Código duplicado: el servidor rechaza con 400 y el espejo no cambia.
	_, err = screen.Submit(ctx, productParams("AC-001"))
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "DUPLICATE", apiErr.Code)

	assert.Equal(t, 1, screen.Mirror().Len())
}

// Un Mount que falla deja el espejo como estaba.
func TestScreen_MountFallido(t *testing.T) {
	app := fiber.New()
	app.Get("/api/products", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"code": "INTERNAL", "message": "sin almacén"})
	})
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	screen := apiclient.New(srv.URL).Products.NewScreen()
	err := screen.Mount(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, screen.Mirror().Len())
}

// La paginación del espejo tras cargar una colección grande del servidor.
func TestScreen_PaginacionTrasMount(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	for i := 0; i < 13; i++ {
		_, err := c.Products.Create(ctx, productParams(fmt.Sprintf("AC-%03d", i)))
		require.NoError(t, err)
	}

	screen := c.Products.NewScreen()
	require.NoError(t, screen.Mount(ctx))
	assert.Equal(t, 13, screen.Mirror().Len())
	assert.Equal(t, 2, screen.Mirror().TotalPages())
	assert.Len(t, screen.Mirror().Page(), 10)

	screen.Mirror().NextPage()
	assert.Len(t, screen.Mirror().Page(), 3)
}

// El borrado del elemento en edición descarta el borrador.
func TestScreen_DeleteDescartaBorrador(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	screen := c.Categories.NewScreen()
	require.NoError(t, screen.Mount(ctx))

	created, err := screen.Submit(ctx, apiclient.CategoryParams{Category: "Abarrotes"})
	require.NoError(t, err)

	_, ok := screen.Edit(created.ID)
	require.True(t, ok)

	require.NoError(t, screen.Delete(ctx, created.ID))
	assert.Empty(t, screen.Editing())
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesmanUC *usecase.SalesmanUseCase
	ClientUC   *usecase.ClientUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
}

// Router registra las rutas de la API. Las cuatro colecciones exponen el
// mismo contrato CRUD bajo /api/<kind>.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	salesmen := api.Group("/salesmen")
	salesmanHandler := NewSalesmanHandler(deps.SalesmanUC)
	salesmen.Get("/", salesmanHandler.List)
	salesmen.Post("/", salesmanHandler.Create)
	salesmen.Get("/:id", salesmanHandler.GetByID)
	salesmen.Put("/:id", salesmanHandler.Update)
	salesmen.Delete("/:id", salesmanHandler.Delete)

	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
}

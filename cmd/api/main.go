package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
	"github.com/jhoicas/gestion-comercial-api/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-comercial-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestion-comercial-api/internal/interfaces/http"
	"github.com/jhoicas/gestion-comercial-api/pkg/config"
	"github.com/jhoicas/gestion-comercial-api/pkg/logger"
)

// repos agrupa los cuatro puertos de persistencia, resueltos según STORE_DRIVER.
type repos struct {
	salesmen   repository.SalesmanRepository
	clients    repository.ClientRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.Store.Driver {
	case "memory":
		// Driver volátil para desarrollo local sin base de datos.
		r = repos{
			salesmen:   memory.NewSalesmanRepository(),
			clients:    memory.NewClientRepository(),
			products:   memory.NewProductRepository(),
			categories: memory.NewCategoryRepository(),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			salesmen:   postgres.NewSalesmanRepository(pool),
			clients:    postgres.NewClientRepository(pool),
			products:   postgres.NewProductRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
		}
	}

	salesmanUC := usecase.NewSalesmanUseCase(r.salesmen)
	clientUC := usecase.NewClientUseCase(r.clients)
	productUC := usecase.NewProductUseCase(r.products)
	categoryUC := usecase.NewCategoryUseCase(r.categories)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// docs/swagger.json se mantiene a mano y es la fuente de verdad del
	// contrato; los handlers no llevan anotaciones generables.
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión Comercial API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesmanUC: salesmanUC,
		ClientUC:   clientUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

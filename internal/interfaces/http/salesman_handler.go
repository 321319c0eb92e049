package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/gestion-comercial-api/internal/application/dto"
	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
	"github.com/jhoicas/gestion-comercial-api/internal/domain"
)

// SalesmanHandler maneja las peticiones HTTP para Salesman.
type SalesmanHandler struct {
	uc *usecase.SalesmanUseCase
}

// NewSalesmanHandler construye el handler.
func NewSalesmanHandler(uc *usecase.SalesmanUseCase) *SalesmanHandler {
	return &SalesmanHandler{uc: uc}
}

// Create POST /api/salesmen
func (h *SalesmanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesmanRequest
	if err := c.BodyParser(&in); err != nil {
		log.Warn().Err(err).Msg("crear vendedor: cuerpo inválido")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			log.Warn().Err(err).Msg("crear vendedor: validación")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		log.Error().Err(err).Msg("crear vendedor")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/salesmen
func (h *SalesmanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar vendedores")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID GET /api/salesmen/:id
func (h *SalesmanHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		log.Error().Err(err).Msg("obtener vendedor")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		log.Warn().Str("id", c.Params("id")).Msg("vendedor no encontrado")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// Update PUT /api/salesmen/:id
func (h *SalesmanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSalesmanRequest
	if err := c.BodyParser(&in); err != nil {
		log.Warn().Err(err).Msg("actualizar vendedor: cuerpo inválido")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			log.Warn().Err(err).Msg("actualizar vendedor: validación")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("id", c.Params("id")).Msg("vendedor no encontrado")
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		log.Error().Err(err).Msg("actualizar vendedor")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		log.Warn().Str("id", c.Params("id")).Msg("vendedor no encontrado")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	}
	return c.JSON(out)
}

// Delete DELETE /api/salesmen/:id
func (h *SalesmanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn().Str("id", c.Params("id")).Msg("vendedor no encontrado")
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
		}
		log.Error().Err(err).Msg("eliminar vendedor")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "vendedor eliminado correctamente"})
}

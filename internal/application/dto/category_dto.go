package dto

import (
	"time"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Category string `json:"category"`
}

// Validate comprueba la etiqueta requerida.
func (in CreateCategoryRequest) Validate() error {
	if firstMissing([]field{{"category", in.Category}}) != "" {
		return domain.Missing("category")
	}
	return nil
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Category *string `json:"category"`
}

// Validate rechaza vaciar la etiqueta vía actualización.
func (in UpdateCategoryRequest) Validate() error {
	if in.Category != nil && firstMissing([]field{{"category", *in.Category}}) != "" {
		return domain.Missing("category")
	}
	return nil
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

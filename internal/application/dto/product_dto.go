package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
)

// CreateProductRequest entrada para crear un producto.
// Los numéricos son punteros para distinguir ausente de cero.
type CreateProductRequest struct {
	Name      string           `json:"name"`
	Code      string           `json:"code"`
	Category  string           `json:"category"`
	CatPrice  *decimal.Decimal `json:"catPrice"`
	DistPrice *decimal.Decimal `json:"distPrice"`
	MasterQ   *int             `json:"masterQ"`
}

// Validate comprueba requeridos y rangos (precios y cantidad no negativos).
func (in CreateProductRequest) Validate() error {
	if name := firstMissing([]field{
		{"name", in.Name},
		{"code", in.Code},
	}); name != "" {
		return domain.Missing(name)
	}
	if in.CatPrice == nil {
		return domain.Missing("catPrice")
	}
	if in.CatPrice.IsNegative() {
		return domain.Invalid("catPrice")
	}
	if in.DistPrice == nil {
		return domain.Missing("distPrice")
	}
	if in.DistPrice.IsNegative() {
		return domain.Invalid("distPrice")
	}
	if in.MasterQ == nil {
		return domain.Missing("masterQ")
	}
	if *in.MasterQ < 0 {
		return domain.Invalid("masterQ")
	}
	return nil
}

// UpdateProductRequest entrada para actualizar un producto (parcial o total).
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Code      *string          `json:"code"`
	Category  *string          `json:"category"`
	CatPrice  *decimal.Decimal `json:"catPrice"`
	DistPrice *decimal.Decimal `json:"distPrice"`
	MasterQ   *int             `json:"masterQ"`
}

// Validate rechaza vaciar requeridos y valores fuera de rango.
func (in UpdateProductRequest) Validate() error {
	if in.Name != nil && firstMissing([]field{{"name", *in.Name}}) != "" {
		return domain.Missing("name")
	}
	if in.Code != nil && firstMissing([]field{{"code", *in.Code}}) != "" {
		return domain.Missing("code")
	}
	if in.CatPrice != nil && in.CatPrice.IsNegative() {
		return domain.Invalid("catPrice")
	}
	if in.DistPrice != nil && in.DistPrice.IsNegative() {
		return domain.Invalid("distPrice")
	}
	if in.MasterQ != nil && *in.MasterQ < 0 {
		return domain.Invalid("masterQ")
	}
	return nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Category  string          `json:"category,omitempty"`
	CatPrice  decimal.Decimal `json:"catPrice"`
	DistPrice decimal.Decimal `json:"distPrice"`
	MasterQ   int             `json:"masterQ"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

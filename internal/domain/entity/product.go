package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Code es único.
// CatPrice es el precio de catálogo y DistPrice el precio distribuidor;
// MasterQ es la cantidad de unidades por caja máster.
// CategoryID referencia a una Category (opcional, sin integridad referencial).
type Product struct {
	ID         string
	Name       string
	Code       string
	CategoryID string
	CatPrice   decimal.Decimal
	DistPrice  decimal.Decimal
	MasterQ    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

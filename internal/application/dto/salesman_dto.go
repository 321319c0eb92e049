package dto

import (
	"time"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
)

// CreateSalesmanRequest entrada para crear un vendedor.
type CreateSalesmanRequest struct {
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	ShortName   string    `json:"shortName"`
	BankAccount string    `json:"bankAccount"`
	Bank        string    `json:"bank"`
	Birthday    time.Time `json:"birthday"`
}

// Validate comprueba los campos requeridos antes de persistir.
func (in CreateSalesmanRequest) Validate() error {
	if name := firstMissing([]field{
		{"name", in.Name},
		{"phoneNumber", in.PhoneNumber},
		{"shortName", in.ShortName},
		{"bankAccount", in.BankAccount},
		{"bank", in.Bank},
	}); name != "" {
		return domain.Missing(name)
	}
	if in.Birthday.IsZero() {
		return domain.Missing("birthday")
	}
	return nil
}

// UpdateSalesmanRequest entrada para actualizar un vendedor (parcial o total).
type UpdateSalesmanRequest struct {
	Name        *string    `json:"name"`
	PhoneNumber *string    `json:"phoneNumber"`
	ShortName   *string    `json:"shortName"`
	BankAccount *string    `json:"bankAccount"`
	Bank        *string    `json:"bank"`
	Birthday    *time.Time `json:"birthday"`
}

// Validate rechaza que un campo requerido se vacíe vía actualización parcial.
func (in UpdateSalesmanRequest) Validate() error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", in.Name},
		{"phoneNumber", in.PhoneNumber},
		{"shortName", in.ShortName},
		{"bankAccount", in.BankAccount},
		{"bank", in.Bank},
	} {
		if f.value != nil && firstMissing([]field{{f.name, *f.value}}) != "" {
			return domain.Missing(f.name)
		}
	}
	if in.Birthday != nil && in.Birthday.IsZero() {
		return domain.Missing("birthday")
	}
	return nil
}

// SalesmanResponse salida de un vendedor.
type SalesmanResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	ShortName   string    `json:"shortName"`
	BankAccount string    `json:"bankAccount"`
	Bank        string    `json:"bank"`
	Birthday    time.Time `json:"birthday"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

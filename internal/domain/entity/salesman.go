package entity

import "time"

// Salesman representa un vendedor de la empresa, con sus datos bancarios
// para el pago de comisiones.
type Salesman struct {
	ID          string
	Name        string
	PhoneNumber string
	ShortName   string
	BankAccount string
	Bank        string
	Birthday    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

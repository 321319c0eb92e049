package entity

import "time"

// Category representa una categoría de productos (etiqueta plana).
type Category struct {
	ID        string
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

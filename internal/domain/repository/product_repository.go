package repository

import "github.com/jhoicas/gestion-comercial-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// Create devuelve domain.ErrDuplicate si el código ya existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}

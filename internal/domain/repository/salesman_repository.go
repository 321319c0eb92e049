package repository

import "github.com/jhoicas/gestion-comercial-api/internal/domain/entity"

// SalesmanRepository define el puerto de persistencia para Salesman (DIP).
// GetByID devuelve (nil, nil) si el ID no existe; Update y Delete devuelven
// domain.ErrNotFound en ese caso.
type SalesmanRepository interface {
	Create(salesman *entity.Salesman) error
	GetByID(id string) (*entity.Salesman, error)
	ListAll() ([]*entity.Salesman, error)
	Update(salesman *entity.Salesman) error
	Delete(id string) error
}

package repository

import "github.com/jhoicas/gestion-comercial-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	ListAll() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

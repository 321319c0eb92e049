package repository

import "github.com/jhoicas/gestion-comercial-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Create devuelve domain.ErrDuplicate si el RUC ya existe (la unicidad
// la garantiza el almacén, no la capa de aplicación).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	ListAll() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}

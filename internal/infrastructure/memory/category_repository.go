package memory

import (
	"sync"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo almacén en memoria de categorías.
type CategoryRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Category
}

// NewCategoryRepository construye el almacén vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{items: map[string]entity.Category{}}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = *c
	return nil
}

// GetByID devuelve una copia de la categoría, o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListAll devuelve todas las categorías, sin orden garantizado.
func (r *CategoryRepo) ListAll() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		c := c
		list = append(list, &c)
	}
	return list, nil
}

// Update reemplaza la categoría existente; domain.ErrNotFound si el ID no existe.
func (r *CategoryRepo) Update(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[c.ID] = *c
	return nil
}

// Delete elimina la categoría; domain.ErrNotFound si el ID no existe.
func (r *CategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count devuelve el número de categorías almacenadas (útil en tests).
func (r *CategoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

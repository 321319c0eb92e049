// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con la misma semántica que el driver postgres (unicidad incluida).
// Se selecciona con STORE_DRIVER=memory y es el backend de los tests.
package memory

import (
	"sync"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

var _ repository.SalesmanRepository = (*SalesmanRepo)(nil)

// SalesmanRepo almacén en memoria de vendedores.
type SalesmanRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Salesman
}

// NewSalesmanRepository construye el almacén vacío.
func NewSalesmanRepository() *SalesmanRepo {
	return &SalesmanRepo{items: map[string]entity.Salesman{}}
}

// Create persiste un nuevo vendedor.
func (r *SalesmanRepo) Create(s *entity.Salesman) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = *s
	return nil
}

// GetByID devuelve una copia del vendedor, o (nil, nil) si no existe.
func (r *SalesmanRepo) GetByID(id string) (*entity.Salesman, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// ListAll devuelve todos los vendedores, sin orden garantizado
// (la iteración de mapas en Go es deliberadamente no determinista).
func (r *SalesmanRepo) ListAll() ([]*entity.Salesman, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Salesman, 0, len(r.items))
	for _, s := range r.items {
		s := s
		list = append(list, &s)
	}
	return list, nil
}

// Update reemplaza el vendedor existente; domain.ErrNotFound si el ID no existe.
func (r *SalesmanRepo) Update(s *entity.Salesman) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[s.ID] = *s
	return nil
}

// Delete elimina el vendedor; domain.ErrNotFound si el ID no existe.
func (r *SalesmanRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count devuelve el número de vendedores almacenados (útil en tests).
func (r *SalesmanRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

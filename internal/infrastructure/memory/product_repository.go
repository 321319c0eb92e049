package memory

import (
	"sync"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo almacén en memoria de productos. Replica la unicidad del
// código que en postgres garantiza el índice único.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Product
}

// NewProductRepository construye el almacén vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: map[string]entity.Product{}}
}

func (r *ProductRepo) codeTaken(code, exceptID string) bool {
	for _, p := range r.items {
		if p.Code == code && p.ID != exceptID {
			return true
		}
	}
	return false
}

// Create persiste un nuevo producto; domain.ErrDuplicate si el código ya existe.
func (r *ProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codeTaken(p.Code, p.ID) {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = *p
	return nil
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// ListAll devuelve todos los productos, sin orden garantizado.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		p := p
		list = append(list, &p)
	}
	return list, nil
}

// Update reemplaza el producto existente; domain.ErrNotFound si el ID no
// existe y domain.ErrDuplicate si el nuevo código colisiona.
func (r *ProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.codeTaken(p.Code, p.ID) {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = *p
	return nil
}

// Delete elimina el producto; domain.ErrNotFound si el ID no existe.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count devuelve el número de productos almacenados (útil en tests).
func (r *ProductRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

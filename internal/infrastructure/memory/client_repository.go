package memory

import (
	"sync"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo almacén en memoria de clientes. Replica la unicidad de RUC
// que en postgres garantiza el índice único.
type ClientRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Client
}

// NewClientRepository construye el almacén vacío.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{items: map[string]entity.Client{}}
}

func (r *ClientRepo) rucTaken(ruc, exceptID string) bool {
	for _, c := range r.items {
		if c.RUC == ruc && c.ID != exceptID {
			return true
		}
	}
	return false
}

// Create persiste un nuevo cliente; domain.ErrDuplicate si el RUC ya existe.
func (r *ClientRepo) Create(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rucTaken(c.RUC, c.ID) {
		return domain.ErrDuplicate
	}
	r.items[c.ID] = *c
	return nil
}

// GetByID devuelve una copia del cliente, o (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ListAll devuelve todos los clientes, sin orden garantizado.
func (r *ClientRepo) ListAll() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Client, 0, len(r.items))
	for _, c := range r.items {
		c := c
		list = append(list, &c)
	}
	return list, nil
}

// Update reemplaza el cliente existente; domain.ErrNotFound si el ID no
// existe y domain.ErrDuplicate si el nuevo RUC colisiona con otro cliente.
func (r *ClientRepo) Update(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.rucTaken(c.RUC, c.ID) {
		return domain.ErrDuplicate
	}
	r.items[c.ID] = *c
	return nil
}

// Delete elimina el cliente; domain.ErrNotFound si el ID no existe.
func (r *ClientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// Count devuelve el número de clientes almacenados (útil en tests).
func (r *ClientRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

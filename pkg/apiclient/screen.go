package apiclient

import (
	"context"

	"github.com/jhoicas/gestion-comercial-api/pkg/listsync"
)

// Service contrato mínimo que necesita una pantalla: las operaciones CRUD
// de una colección con parámetros sin tipar (los fija el servicio concreto).
type Service[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, params any) (*T, error)
	Update(ctx context.Context, id string, params any) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Screen estado de una pantalla de administración: un espejo local de la
// colección y un borrador de edición. Se construye al montar la pantalla y
// se descarta al desmontarla; no comparte estado con otras pantallas.
type Screen[T any] struct {
	svc     Service[T]
	mirror  *listsync.Mirror[T]
	id      func(T) string
	draftID string
}

// NewScreen construye la pantalla con espejo vacío.
func NewScreen[T any](svc Service[T], id func(T) string) *Screen[T] {
	return &Screen[T]{
		svc:    svc,
		mirror: listsync.NewMirror(id),
		id:     id,
	}
}

// Mount carga el espejo con el listado completo del servidor. Si el listado
// falla, el espejo queda vacío y el error se devuelve para mostrarse al usuario.
func (s *Screen[T]) Mount(ctx context.Context) error {
	items, err := s.svc.List(ctx)
	if err != nil {
		return err
	}
	s.mirror.Load(items)
	return nil
}

// Mirror acceso al espejo (página visible, totales).
func (s *Screen[T]) Mirror() *listsync.Mirror[T] { return s.mirror }

// Edit selecciona un elemento del espejo para edición y devuelve sus valores
// actuales para poblar el formulario. Devuelve false si la identidad no está
// en el espejo.
func (s *Screen[T]) Edit(id string) (T, bool) {
	for _, item := range s.mirror.All() {
		if s.id(item) == id {
			s.draftID = id
			return item, true
		}
	}
	var zero T
	return zero, false
}

// CancelEdit descarta el borrador de edición.
func (s *Screen[T]) CancelEdit() { s.draftID = "" }

// Editing identidad en edición, o "" si el borrador es un alta.
func (s *Screen[T]) Editing() string { return s.draftID }

// Submit envía el borrador: actualiza si hay una identidad en edición y crea
// en caso contrario, nunca ambas. Tras un alta confirmada el documento del
// servidor se añade al espejo; tras una edición confirmada se reemplaza la
// entrada con esa identidad. Si la llamada falla, el espejo no se toca.
func (s *Screen[T]) Submit(ctx context.Context, params any) (*T, error) {
	if s.draftID != "" {
		updated, err := s.svc.Update(ctx, s.draftID, params)
		if err != nil {
			return nil, err
		}
		s.mirror.Replace(*updated)
		s.draftID = ""
		return updated, nil
	}
	created, err := s.svc.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	s.mirror.Insert(*created)
	return created, nil
}

// Delete elimina en el servidor y, solo si confirma, retira la entrada del
// espejo. Si el elemento eliminado estaba en edición, descarta el borrador.
func (s *Screen[T]) Delete(ctx context.Context, id string) error {
	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.mirror.Remove(id)
	if s.draftID == id {
		s.draftID = ""
	}
	return nil
}

// Package listsync mantiene un espejo local de una colección remota.
// El espejo solo se reconcilia con el servidor en momentos explícitos:
// carga completa al montar la pantalla y mutaciones locales tras cada
// operación confirmada por el servidor (sin push en vivo ni refetch).
package listsync

// PageSize tamaño fijo de página de la vista derivada.
const PageSize = 10

// Mirror espejo en memoria de una colección, con paginación derivada.
// No es seguro para uso concurrente: el consumidor serializa las
// operaciones (una petición en vuelo a la vez).
type Mirror[T any] struct {
	items []T
	id    func(T) string
	page  int
}

// NewMirror construye un espejo vacío; id extrae la identidad de un elemento.
func NewMirror[T any](id func(T) string) *Mirror[T] {
	return &Mirror[T]{id: id}
}

// Load reemplaza el contenido completo del espejo (respuesta de un listado).
func (m *Mirror[T]) Load(items []T) {
	m.items = append([]T(nil), items...)
	m.clampPage()
}

// Insert añade al final el elemento devuelto por un alta confirmada.
// No se refresca la colección completa: un alta concurrente de otra sesión
// no aparecerá hasta el próximo Load.
func (m *Mirror[T]) Insert(item T) {
	m.items = append(m.items, item)
}

// Replace sustituye el elemento con la misma identidad. Devuelve false si
// la identidad no está en el espejo.
func (m *Mirror[T]) Replace(item T) bool {
	want := m.id(item)
	for i := range m.items {
		if m.id(m.items[i]) == want {
			m.items[i] = item
			return true
		}
	}
	return false
}

// Remove elimina el elemento con esa identidad. Devuelve false si no está.
func (m *Mirror[T]) Remove(id string) bool {
	for i := range m.items {
		if m.id(m.items[i]) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.clampPage()
			return true
		}
	}
	return false
}

// Len número total de elementos en el espejo.
func (m *Mirror[T]) Len() int { return len(m.items) }

// All devuelve el contenido completo del espejo.
func (m *Mirror[T]) All() []T {
	return append([]T(nil), m.items...)
}

// Page devuelve la página visible actual (hasta PageSize elementos).
func (m *Mirror[T]) Page() []T {
	start := m.page * PageSize
	if start >= len(m.items) {
		return nil
	}
	end := start + PageSize
	if end > len(m.items) {
		end = len(m.items)
	}
	return append([]T(nil), m.items[start:end]...)
}

// PageIndex índice de la página visible (base cero).
func (m *Mirror[T]) PageIndex() int { return m.page }

// TotalPages número de páginas derivado del tamaño del espejo (mínimo 1).
func (m *Mirror[T]) TotalPages() int {
	if len(m.items) == 0 {
		return 1
	}
	return (len(m.items) + PageSize - 1) / PageSize
}

// NextPage avanza una página si existe.
func (m *Mirror[T]) NextPage() {
	if m.page < m.TotalPages()-1 {
		m.page++
	}
}

// PrevPage retrocede una página si existe.
func (m *Mirror[T]) PrevPage() {
	if m.page > 0 {
		m.page--
	}
}

// clampPage ajusta el índice cuando la página actual queda fuera del rango
// tras una mutación. Las mutaciones nunca reinician la página a cero.
func (m *Mirror[T]) clampPage() {
	if last := m.TotalPages() - 1; m.page > last {
		m.page = last
	}
}

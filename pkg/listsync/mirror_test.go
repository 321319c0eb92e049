package listsync_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial-api/pkg/listsync"
)

type item struct {
	ID   string
	Name string
}

func newMirror() *listsync.Mirror[item] {
	return listsync.NewMirror(func(it item) string { return it.ID })
}

func fill(m *listsync.Mirror[item], n int) {
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, item{ID: fmt.Sprintf("id-%02d", i), Name: fmt.Sprintf("item %d", i)})
	}
	m.Load(items)
}

// El espejo vacío expone una página vacía y exactamente una página total.
func TestMirror_Vacio(t *testing.T) {
	m := newMirror()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Page())
	assert.Equal(t, 1, m.TotalPages())
	assert.Equal(t, 0, m.PageIndex())
}

// Paginación derivada: 25 elementos son 3 páginas de 10, 10 y 5.
func TestMirror_Paginacion(t *testing.T) {
	m := newMirror()
	fill(m, 25)

	assert.Equal(t, 3, m.TotalPages())
	assert.Len(t, m.Page(), 10)
	assert.Equal(t, "id-00", m.Page()[0].ID)

	m.NextPage()
	assert.Equal(t, 1, m.PageIndex())
	assert.Equal(t, "id-10", m.Page()[0].ID)

	m.NextPage()
	assert.Len(t, m.Page(), 5)

	m.NextPage()
	assert.Equal(t, 2, m.PageIndex(), "no se avanza más allá de la última página")

	m.PrevPage()
	m.PrevPage()
	m.PrevPage()
	assert.Equal(t, 0, m.PageIndex(), "no se retrocede antes de la primera página")
}

// Insert añade al final; Replace sustituye por identidad sin reordenar.
func TestMirror_InsertYReplace(t *testing.T) {
	m := newMirror()
	fill(m, 3)

	m.Insert(item{ID: "id-99", Name: "nuevo"})
	require.Equal(t, 4, m.Len())
	assert.Equal(t, "id-99", m.All()[3].ID, "el alta va al final")

	ok := m.Replace(item{ID: "id-01", Name: "editado"})
	require.True(t, ok)
	all := m.All()
	assert.Equal(t, "editado", all[1].Name)
	assert.Equal(t, "id-00", all[0].ID, "el orden no cambia")

	assert.False(t, m.Replace(item{ID: "desconocido"}))
}

// Remove retira por identidad; si vacía la última página, el índice se
// ajusta a la última página válida en lugar de reiniciarse a cero.
func TestMirror_RemoveAjustaPagina(t *testing.T) {
	m := newMirror()
	fill(m, 11)

	m.NextPage()
	require.Equal(t, 1, m.PageIndex())

	require.True(t, m.Remove("id-10"))
	assert.Equal(t, 10, m.Len())
	assert.Equal(t, 0, m.PageIndex(), "la página se ajusta a la última válida")
	assert.Len(t, m.Page(), 10)

	assert.False(t, m.Remove("id-10"), "ya no está en el espejo")
}

// Load reemplaza todo el contenido y conserva la página si sigue en rango.
func TestMirror_LoadConservaPagina(t *testing.T) {
	m := newMirror()
	fill(m, 30)
	m.NextPage()
	require.Equal(t, 1, m.PageIndex())

	fill(m, 15)
	assert.Equal(t, 1, m.PageIndex(), "la página 1 sigue siendo válida con 15 elementos")
	assert.Len(t, m.Page(), 5)

	fill(m, 3)
	assert.Equal(t, 0, m.PageIndex(), "con una sola página el índice se ajusta")
}

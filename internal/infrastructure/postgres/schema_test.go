package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los IDs del API son cadenas opacas: una petición con un ID arbitrario
// (p. ej. PUT /api/salesmen/doesnotexist) debe resolver a 404, no a un
// fallo del codec uuid antes de ejecutar la consulta. Eso exige columnas
// de identidad TEXT en el esquema.
func TestEsquema_IdentidadesComoTextoOpaco(t *testing.T) {
	raw, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	idText := regexp.MustCompile(`(?m)^\s*id\s+TEXT PRIMARY KEY`)
	assert.Len(t, idText.FindAllString(schema, -1), 4,
		"las cuatro tablas declaran su ID como TEXT")

	idUUID := regexp.MustCompile(`(?m)^\s*\w+\s+UUID`)
	assert.Empty(t, idUUID.FindAllString(schema, -1),
		"ninguna columna usa el tipo UUID")
}

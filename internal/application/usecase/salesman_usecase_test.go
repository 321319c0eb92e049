package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial-api/internal/application/dto"
	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/infrastructure/memory"
)

func newSalesmanUC(t *testing.T) (*usecase.SalesmanUseCase, *memory.SalesmanRepo) {
	t.Helper()
	repo := memory.NewSalesmanRepository()
	return usecase.NewSalesmanUseCase(repo), repo
}

func salesmanRequest(name string) dto.CreateSalesmanRequest {
	return dto.CreateSalesmanRequest{
		Name:        name,
		PhoneNumber: "912345678",
		ShortName:   "JP",
		BankAccount: "0011-0123-0100012345",
		Bank:        "BCP",
		Birthday:    time.Date(1988, 4, 17, 0, 0, 0, 0, time.UTC),
	}
}

// Alta y consulta: todos los campos enviados se recuperan.
func TestSalesmanUseCase_AltaYConsulta(t *testing.T) {
	uc, _ := newSalesmanUC(t)

	created, err := uc.Create(salesmanRequest("Juan Pérez"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Juan Pérez", got.Name)
	assert.Equal(t, "BCP", got.Bank)
	assert.True(t, got.Birthday.Equal(time.Date(1988, 4, 17, 0, 0, 0, 0, time.UTC)))
}

// Campos requeridos: el primero ausente se reporta.
func TestSalesmanUseCase_RequeridoAusente(t *testing.T) {
	uc, repo := newSalesmanUC(t)

	in := salesmanRequest("Juan Pérez")
	in.Bank = "  "
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = salesmanRequest("Juan Pérez")
	in.Birthday = time.Time{}
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 0, repo.Count())
}

// Actualizar un ID inexistente no encuentra nada y no altera la colección.
func TestSalesmanUseCase_ActualizarInexistente(t *testing.T) {
	uc, repo := newSalesmanUC(t)

	_, err := uc.Create(salesmanRequest("Juan Pérez"))
	require.NoError(t, err)

	name := "Nadie"
	out, err := uc.Update("doesnotexist", dto.UpdateSalesmanRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "el ID inexistente no debe resolverse")
	assert.Equal(t, 1, repo.Count(), "la colección no debe cambiar")
}

// Eliminar un vendedor referenciado por un cliente no falla: la referencia
// del cliente queda colgante (comportamiento documentado, sin cascada).
func TestSalesmanUseCase_BorradoConReferenciaColgante(t *testing.T) {
	salesmanUC, _ := newSalesmanUC(t)
	clientUC, _ := newClientUC(t)

	salesman, err := salesmanUC.Create(salesmanRequest("Juan Pérez"))
	require.NoError(t, err)

	in := clientRequest("20123456789")
	in.AssignedSalesman = salesman.ID
	client, err := clientUC.Create(in)
	require.NoError(t, err)

	require.NoError(t, salesmanUC.Delete(salesman.ID))

	got, err := clientUC.GetByID(client.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, salesman.ID, got.AssignedSalesman, "la referencia colgante se conserva")

	gone, err := salesmanUC.GetByID(salesman.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

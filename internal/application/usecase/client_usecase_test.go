package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-comercial-api/internal/application/dto"
	"github.com/jhoicas/gestion-comercial-api/internal/application/usecase"
	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/infrastructure/memory"
)

func newClientUC(t *testing.T) (*usecase.ClientUseCase, *memory.ClientRepo) {
	t.Helper()
	repo := memory.NewClientRepository()
	return usecase.NewClientUseCase(repo), repo
}

func clientRequest(ruc string) dto.CreateClientRequest {
	return dto.CreateClientRequest{
		RUC:              ruc,
		FullName:         "Distribuidora El Sol S.A.C.",
		ShortName:        "El Sol",
		Contact1:         "María Quispe",
		Phone1:           "987654321",
		Address:          "Av. Los Incas 1234",
		District:         "San Juan de Lurigancho",
		Province:         "Lima",
		Department:       "Lima",
		AssignedSalesman: "11111111-1111-1111-1111-111111111111",
	}
}

// Alta válida: identidad generada y campos persistidos tal cual.
func TestClientUseCase_AltaValida(t *testing.T) {
	uc, _ := newClientUC(t)

	created, err := uc.Create(clientRequest("20123456789"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "20123456789", created.RUC)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Distribuidora El Sol S.A.C.", got.FullName)
	assert.Equal(t, "San Juan de Lurigancho", got.District)
}

// Omitir un requerido (address) rechaza el alta y no persiste nada.
func TestClientUseCase_RequeridoAusente(t *testing.T) {
	uc, repo := newClientUC(t)

	in := clientRequest("20123456789")
	in.Address = ""
	_, err := uc.Create(in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "address", vErr.Field)
	assert.Equal(t, domain.MissingField, vErr.Kind)

	assert.Equal(t, 0, repo.Count(), "no debe persistirse ningún documento")
}

// RUC duplicado: la unicidad la aplica el almacén en la escritura.
func TestClientUseCase_RUCDuplicado(t *testing.T) {
	uc, repo := newClientUC(t)

	_, err := uc.Create(clientRequest("20123456789"))
	require.NoError(t, err)

	in := clientRequest("20123456789")
	in.FullName = "Otra razón social"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, repo.Count())
}

// Actualización parcial: solo cambian los campos presentes en el parche.
func TestClientUseCase_ActualizacionParcial(t *testing.T) {
	uc, _ := newClientUC(t)

	created, err := uc.Create(clientRequest("20123456789"))
	require.NoError(t, err)

	phone := "999888777"
	updated, err := uc.Update(created.ID, dto.UpdateClientRequest{Phone1: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "999888777", updated.Phone1)
	assert.Equal(t, "20123456789", updated.RUC, "el RUC no estaba en el parche")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

// Vaciar un requerido vía parche se rechaza.
func TestClientUseCase_ParcheVaciaRequerido(t *testing.T) {
	uc, _ := newClientUC(t)

	created, err := uc.Create(clientRequest("20123456789"))
	require.NoError(t, err)

	empty := "   "
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{District: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

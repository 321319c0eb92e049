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

func newCategoryUC(t *testing.T) *usecase.CategoryUseCase {
	t.Helper()
	return usecase.NewCategoryUseCase(memory.NewCategoryRepository())
}

func TestCategoryUseCase_CicloCompleto(t *testing.T) {
	uc := newCategoryUC(t)

	created, err := uc.Create(dto.CreateCategoryRequest{Category: "Abarrotes"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Abarrotes", created.Category)

	label := "Limpieza"
	updated, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Category: &label})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Limpieza", updated.Category)
	assert.Equal(t, created.ID, updated.ID)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, uc.Delete(created.ID))
	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryUseCase_EtiquetaRequerida(t *testing.T) {
	uc := newCategoryUC(t)

	_, err := uc.Create(dto.CreateCategoryRequest{Category: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUseCase_BorrarInexistente(t *testing.T) {
	uc := newCategoryUC(t)
	assert.ErrorIs(t, uc.Delete("doesnotexist"), domain.ErrNotFound)
}

package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-comercial-api/internal/application/dto"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

// SalesmanUseCase casos de uso CRUD para vendedores.
type SalesmanUseCase struct {
	repo repository.SalesmanRepository
}

// NewSalesmanUseCase construye el caso de uso.
func NewSalesmanUseCase(repo repository.SalesmanRepository) *SalesmanUseCase {
	return &SalesmanUseCase{repo: repo}
}

// Create crea un nuevo vendedor con ID generado por el servidor.
func (uc *SalesmanUseCase) Create(in dto.CreateSalesmanRequest) (*dto.SalesmanResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	salesman := &entity.Salesman{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		ShortName:   strings.TrimSpace(in.ShortName),
		BankAccount: strings.TrimSpace(in.BankAccount),
		Bank:        strings.TrimSpace(in.Bank),
		Birthday:    in.Birthday,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(salesman); err != nil {
		return nil, err
	}
	return toSalesmanResponse(salesman), nil
}

// GetByID obtiene un vendedor por ID. Devuelve (nil, nil) si no existe.
func (uc *SalesmanUseCase) GetByID(id string) (*dto.SalesmanResponse, error) {
	salesman, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if salesman == nil {
		return nil, nil
	}
	return toSalesmanResponse(salesman), nil
}

// List lista todos los vendedores.
func (uc *SalesmanUseCase) List() ([]dto.SalesmanResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalesmanResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSalesmanResponse(s))
	}
	return items, nil
}

// Update actualiza los campos presentes en la petición; ID y createdAt no cambian.
// Devuelve (nil, nil) si el ID no existe.
func (uc *SalesmanUseCase) Update(id string, in dto.UpdateSalesmanRequest) (*dto.SalesmanResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	salesman, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if salesman == nil {
		return nil, nil
	}
	if in.Name != nil {
		salesman.Name = strings.TrimSpace(*in.Name)
	}
	if in.PhoneNumber != nil {
		salesman.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.ShortName != nil {
		salesman.ShortName = strings.TrimSpace(*in.ShortName)
	}
	if in.BankAccount != nil {
		salesman.BankAccount = strings.TrimSpace(*in.BankAccount)
	}
	if in.Bank != nil {
		salesman.Bank = strings.TrimSpace(*in.Bank)
	}
	if in.Birthday != nil {
		salesman.Birthday = *in.Birthday
	}
	salesman.UpdatedAt = time.Now()
	if err := uc.repo.Update(salesman); err != nil {
		return nil, err
	}
	return toSalesmanResponse(salesman), nil
}

// Delete elimina un vendedor. Sin cascada: los clientes asignados conservan
// la referencia, que queda colgante.
func (uc *SalesmanUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSalesmanResponse(s *entity.Salesman) *dto.SalesmanResponse {
	return &dto.SalesmanResponse{
		ID:          s.ID,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		ShortName:   s.ShortName,
		BankAccount: s.BankAccount,
		Bank:        s.Bank,
		Birthday:    s.Birthday,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

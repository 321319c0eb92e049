package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-comercial-api/internal/application/dto"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
// La unicidad del RUC la garantiza el almacén (índice único), no esta capa.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un nuevo cliente con ID generado por el servidor.
// No comprueba que el vendedor asignado exista (referencia informativa).
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	client := &entity.Client{
		ID:                 uuid.New().String(),
		RUC:                strings.TrimSpace(in.RUC),
		FullName:           strings.TrimSpace(in.FullName),
		ShortName:          strings.TrimSpace(in.ShortName),
		Contact1:           strings.TrimSpace(in.Contact1),
		Phone1:             strings.TrimSpace(in.Phone1),
		Contact2:           strings.TrimSpace(in.Contact2),
		Phone2:             strings.TrimSpace(in.Phone2),
		Address:            strings.TrimSpace(in.Address),
		District:           strings.TrimSpace(in.District),
		Province:           strings.TrimSpace(in.Province),
		Department:         strings.TrimSpace(in.Department),
		Reference:          strings.TrimSpace(in.Reference),
		TransportAgency:    strings.TrimSpace(in.TransportAgency),
		TransportAddress:   strings.TrimSpace(in.TransportAddress),
		TransportDistrict:  strings.TrimSpace(in.TransportDistrict),
		TransportReference: strings.TrimSpace(in.TransportReference),
		AssignedSalesmanID: strings.TrimSpace(in.AssignedSalesman),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return items, nil
}

// Update actualiza los campos presentes en la petición; ID y createdAt no cambian.
// Devuelve (nil, nil) si el ID no existe.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	applyString(&client.RUC, in.RUC)
	applyString(&client.FullName, in.FullName)
	applyString(&client.ShortName, in.ShortName)
	applyString(&client.Contact1, in.Contact1)
	applyString(&client.Phone1, in.Phone1)
	applyString(&client.Contact2, in.Contact2)
	applyString(&client.Phone2, in.Phone2)
	applyString(&client.Address, in.Address)
	applyString(&client.District, in.District)
	applyString(&client.Province, in.Province)
	applyString(&client.Department, in.Department)
	applyString(&client.Reference, in.Reference)
	applyString(&client.TransportAgency, in.TransportAgency)
	applyString(&client.TransportAddress, in.TransportAddress)
	applyString(&client.TransportDistrict, in.TransportDistrict)
	applyString(&client.TransportReference, in.TransportReference)
	applyString(&client.AssignedSalesmanID, in.AssignedSalesman)
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                 c.ID,
		RUC:                c.RUC,
		FullName:           c.FullName,
		ShortName:          c.ShortName,
		Contact1:           c.Contact1,
		Phone1:             c.Phone1,
		Contact2:           c.Contact2,
		Phone2:             c.Phone2,
		Address:            c.Address,
		District:           c.District,
		Province:           c.Province,
		Department:         c.Department,
		Reference:          c.Reference,
		TransportAgency:    c.TransportAgency,
		TransportAddress:   c.TransportAddress,
		TransportDistrict:  c.TransportDistrict,
		TransportReference: c.TransportReference,
		AssignedSalesman:   c.AssignedSalesmanID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
)

// CreateClientRequest entrada para crear un cliente.
// Los campos de transporte y el segundo contacto son opcionales.
type CreateClientRequest struct {
	RUC                string `json:"ruc"`
	FullName           string `json:"fullName"`
	ShortName          string `json:"shortName"`
	Contact1           string `json:"contact1"`
	Phone1             string `json:"phone1"`
	Contact2           string `json:"contact2"`
	Phone2             string `json:"phone2"`
	Address            string `json:"address"`
	District           string `json:"district"`
	Province           string `json:"province"`
	Department         string `json:"department"`
	Reference          string `json:"reference"`
	TransportAgency    string `json:"transportAgency"`
	TransportAddress   string `json:"transportAddress"`
	TransportDistrict  string `json:"transportDistrict"`
	TransportReference string `json:"transportReference"`
	AssignedSalesman   string `json:"assignedSalesman"`
}

// Validate comprueba los campos requeridos antes de persistir.
// La existencia del vendedor asignado NO se comprueba: la referencia es informativa.
func (in CreateClientRequest) Validate() error {
	if name := firstMissing([]field{
		{"ruc", in.RUC},
		{"fullName", in.FullName},
		{"shortName", in.ShortName},
		{"contact1", in.Contact1},
		{"phone1", in.Phone1},
		{"address", in.Address},
		{"district", in.District},
		{"province", in.Province},
		{"department", in.Department},
		{"assignedSalesman", in.AssignedSalesman},
	}); name != "" {
		return domain.Missing(name)
	}
	return nil
}

// UpdateClientRequest entrada para actualizar un cliente (parcial o total).
type UpdateClientRequest struct {
	RUC                *string `json:"ruc"`
	FullName           *string `json:"fullName"`
	ShortName          *string `json:"shortName"`
	Contact1           *string `json:"contact1"`
	Phone1             *string `json:"phone1"`
	Contact2           *string `json:"contact2"`
	Phone2             *string `json:"phone2"`
	Address            *string `json:"address"`
	District           *string `json:"district"`
	Province           *string `json:"province"`
	Department         *string `json:"department"`
	Reference          *string `json:"reference"`
	TransportAgency    *string `json:"transportAgency"`
	TransportAddress   *string `json:"transportAddress"`
	TransportDistrict  *string `json:"transportDistrict"`
	TransportReference *string `json:"transportReference"`
	AssignedSalesman   *string `json:"assignedSalesman"`
}

// Validate rechaza que un campo requerido se vacíe vía actualización parcial.
func (in UpdateClientRequest) Validate() error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"ruc", in.RUC},
		{"fullName", in.FullName},
		{"shortName", in.ShortName},
		{"contact1", in.Contact1},
		{"phone1", in.Phone1},
		{"address", in.Address},
		{"district", in.District},
		{"province", in.Province},
		{"department", in.Department},
		{"assignedSalesman", in.AssignedSalesman},
	} {
		if f.value != nil && firstMissing([]field{{f.name, *f.value}}) != "" {
			return domain.Missing(f.name)
		}
	}
	return nil
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID                 string    `json:"id"`
	RUC                string    `json:"ruc"`
	FullName           string    `json:"fullName"`
	ShortName          string    `json:"shortName"`
	Contact1           string    `json:"contact1"`
	Phone1             string    `json:"phone1"`
	Contact2           string    `json:"contact2,omitempty"`
	Phone2             string    `json:"phone2,omitempty"`
	Address            string    `json:"address"`
	District           string    `json:"district"`
	Province           string    `json:"province"`
	Department         string    `json:"department"`
	Reference          string    `json:"reference,omitempty"`
	TransportAgency    string    `json:"transportAgency,omitempty"`
	TransportAddress   string    `json:"transportAddress,omitempty"`
	TransportDistrict  string    `json:"transportDistrict,omitempty"`
	TransportReference string    `json:"transportReference,omitempty"`
	AssignedSalesman   string    `json:"assignedSalesman"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

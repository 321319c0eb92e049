package apiclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registros tal como viajan por el API (campos camelCase).
// Los timestamps los asigna el servidor y son de solo lectura.

// Salesman vendedor.
type Salesman struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	ShortName   string    `json:"shortName"`
	BankAccount string    `json:"bankAccount"`
	Bank        string    `json:"bank"`
	Birthday    time.Time `json:"birthday"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SalesmanParams campos editables de un vendedor (alta y edición).
type SalesmanParams struct {
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	ShortName   string    `json:"shortName"`
	BankAccount string    `json:"bankAccount"`
	Bank        string    `json:"bank"`
	Birthday    time.Time `json:"birthday"`
}

// ClientRecord cliente. El nombre evita el choque con apiclient.Client.
type ClientRecord struct {
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

// ClientParams campos editables de un cliente.
type ClientParams struct {
	RUC                string `json:"ruc"`
	FullName           string `json:"fullName"`
	ShortName          string `json:"shortName"`
	Contact1           string `json:"contact1"`
	Phone1             string `json:"phone1"`
	Contact2           string `json:"contact2,omitempty"`
	Phone2             string `json:"phone2,omitempty"`
	Address            string `json:"address"`
	District           string `json:"district"`
	Province           string `json:"province"`
	Department         string `json:"department"`
	Reference          string `json:"reference,omitempty"`
	TransportAgency    string `json:"transportAgency,omitempty"`
	TransportAddress   string `json:"transportAddress,omitempty"`
	TransportDistrict  string `json:"transportDistrict,omitempty"`
	TransportReference string `json:"transportReference,omitempty"`
	AssignedSalesman   string `json:"assignedSalesman"`
}

// Product producto del catálogo.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Category  string          `json:"category,omitempty"`
	CatPrice  decimal.Decimal `json:"catPrice"`
	DistPrice decimal.Decimal `json:"distPrice"`
	MasterQ   int             `json:"masterQ"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductParams campos editables de un producto.
type ProductParams struct {
	Name      string          `json:"name"`
	Code      string          `json:"code"`
	Category  string          `json:"category,omitempty"`
	CatPrice  decimal.Decimal `json:"catPrice"`
	DistPrice decimal.Decimal `json:"distPrice"`
	MasterQ   int             `json:"masterQ"`
}

// Category categoría de productos.
type Category struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryParams campos editables de una categoría.
type CategoryParams struct {
	Category string `json:"category"`
}

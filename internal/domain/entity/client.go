package entity

import "time"

// Client representa un cliente (RUC único) con datos de contacto, ubicación
// y agencia de transporte para el despacho de pedidos.
// AssignedSalesmanID referencia a un Salesman; la referencia es informativa:
// el vendedor puede haber sido eliminado y la referencia quedar colgante.
type Client struct {
	ID                 string
	RUC                string
	FullName           string
	ShortName          string
	Contact1           string
	Phone1             string
	Contact2           string
	Phone2             string
	Address            string
	District           string
	Province           string
	Department         string
	Reference          string
	TransportAgency    string
	TransportAddress   string
	TransportDistrict  string
	TransportReference string
	AssignedSalesmanID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-comercial-api/internal/domain"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/entity"
	"github.com/jhoicas/gestion-comercial-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
// La unicidad del RUC la garantiza un índice único; no hay FK hacia salesmen.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, ruc, full_name, short_name, contact1, phone1, contact2, phone2,
		address, district, province, department, reference, transport_agency, transport_address,
		transport_district, transport_reference, assigned_salesman_id, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.RUC, &c.FullName, &c.ShortName, &c.Contact1, &c.Phone1, &c.Contact2, &c.Phone2,
		&c.Address, &c.District, &c.Province, &c.Department, &c.Reference, &c.TransportAgency,
		&c.TransportAddress, &c.TransportDistrict, &c.TransportReference, &c.AssignedSalesmanID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente. Devuelve domain.ErrDuplicate si el RUC colisiona.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.RUC, c.FullName, c.ShortName, c.Contact1, c.Phone1, c.Contact2, c.Phone2,
		c.Address, c.District, c.Province, c.Department, c.Reference, c.TransportAgency,
		c.TransportAddress, c.TransportDistrict, c.TransportReference, c.AssignedSalesmanID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// ListAll lista todos los clientes. El orden no está garantizado.
func (r *ClientRepo) ListAll() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente (incluido el RUC; el índice único
// sigue aplicando). ID y created_at no se tocan.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET ruc = $2, full_name = $3, short_name = $4, contact1 = $5, phone1 = $6,
			contact2 = $7, phone2 = $8, address = $9, district = $10, province = $11, department = $12,
			reference = $13, transport_agency = $14, transport_address = $15, transport_district = $16,
			transport_reference = $17, assigned_salesman_id = $18, updated_at = $19
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		c.ID, c.RUC, c.FullName, c.ShortName, c.Contact1, c.Phone1, c.Contact2, c.Phone2,
		c.Address, c.District, c.Province, c.Department, c.Reference, c.TransportAgency,
		c.TransportAddress, c.TransportDistrict, c.TransportReference, c.AssignedSalesmanID,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

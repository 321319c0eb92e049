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

var _ repository.SalesmanRepository = (*SalesmanRepo)(nil)

// SalesmanRepo implementación del puerto SalesmanRepository sobre PostgreSQL.
type SalesmanRepo struct {
	q Querier
}

// NewSalesmanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesmanRepository(q Querier) *SalesmanRepo {
	return &SalesmanRepo{q: q}
}

// Create persiste un nuevo vendedor.
func (r *SalesmanRepo) Create(s *entity.Salesman) error {
	query := `
		INSERT INTO salesmen (id, name, phone_number, short_name, bank_account, bank, birthday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.PhoneNumber, s.ShortName, s.BankAccount, s.Bank, s.Birthday,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salesman: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID. Devuelve (nil, nil) si no existe.
func (r *SalesmanRepo) GetByID(id string) (*entity.Salesman, error) {
	query := `
		SELECT id, name, phone_number, short_name, bank_account, bank, birthday, created_at, updated_at
		FROM salesmen WHERE id = $1`
	var s entity.Salesman
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.PhoneNumber, &s.ShortName, &s.BankAccount, &s.Bank, &s.Birthday,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salesman: %w", err)
	}
	return &s, nil
}

// ListAll lista todos los vendedores. El orden no está garantizado.
func (r *SalesmanRepo) ListAll() ([]*entity.Salesman, error) {
	query := `
		SELECT id, name, phone_number, short_name, bank_account, bank, birthday, created_at, updated_at
		FROM salesmen`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list salesmen: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salesman
	for rows.Next() {
		var s entity.Salesman
		if err := rows.Scan(&s.ID, &s.Name, &s.PhoneNumber, &s.ShortName, &s.BankAccount,
			&s.Bank, &s.Birthday, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan salesman: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un vendedor existente. ID y created_at no se tocan.
func (r *SalesmanRepo) Update(s *entity.Salesman) error {
	query := `
		UPDATE salesmen SET name = $2, phone_number = $3, short_name = $4, bank_account = $5, bank = $6, birthday = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.PhoneNumber, s.ShortName, s.BankAccount, s.Bank, s.Birthday, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update salesman: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vendedor por ID (borrado físico, sin cascada:
// los clientes que lo referencien quedan con la referencia colgante).
func (r *SalesmanRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM salesmen WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete salesman: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

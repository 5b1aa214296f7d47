package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementa repository.ClientRepository con pgx.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el repositorio con el pool o una transacción.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, markup_rate, created_at`

// Create inserta el cliente y asigna ID y CreatedAt.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	const query = `INSERT INTO clients (name, markup_rate) VALUES ($1, $2) RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, c.Name, c.MarkupRate).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert client: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista clientes ordenados por ID a partir de page.AfterID.
func (r *ClientRepo) List(ctx context.Context, page repository.PageQuery) ([]*entity.Client, error) {
	query, args := pageClause(`SELECT `+clientColumns+` FROM clients`, nil, page.AfterID, page.Limit, false)
	rows, err := r.q.Query(ctx, query, args...)
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

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Name, &c.MarkupRate, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

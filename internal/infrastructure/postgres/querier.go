package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier lo que necesitan los repositorios: lo cumplen *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner abre transacciones (pool real o mock en tests).
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// pageClause agrega "id > $n" y el LIMIT a una consulta que ya tiene WHERE si hasWhere.
func pageClause(query string, args []any, afterID int64, limit int, hasWhere bool) (string, []any) {
	kw := " WHERE "
	if hasWhere {
		kw = " AND "
	}
	args = append(args, afterID)
	query += kw + "id > $" + itoa(len(args)) + " ORDER BY id"
	if limit > 0 {
		args = append(args, limit)
		query += " LIMIT $" + itoa(len(args))
	}
	return query, args
}

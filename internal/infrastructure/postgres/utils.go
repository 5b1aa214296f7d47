package postgres

import (
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE usados en la traducción de errores.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// pgCode devuelve el SQLSTATE del error o "".
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == codeUniqueViolation }

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool { return pgCode(err) == codeCheckViolation }

func itoa(n int) string { return strconv.Itoa(n) }

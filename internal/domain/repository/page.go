package repository

// PageQuery paginación por keyset sobre el ID: filas con id > AfterID, ordenadas por id.
// Limit <= 0 significa sin límite.
type PageQuery struct {
	AfterID int64
	Limit   int
}

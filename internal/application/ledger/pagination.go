package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

// DefaultMaxPageSize tope de first cuando no se configura otro.
const DefaultMaxPageSize = 100

// Page porción de una conexión ya recortada a first.
type Page[T any] struct {
	Items           []T
	HasNextPage     bool
	HasPreviousPage bool
}

// paginate traduce first/after a una consulta keyset pidiendo first+1 filas para saber si hay
// página siguiente.
func paginate[T any](
	ctx context.Context,
	args dto.PageArgs,
	maxPageSize int,
	fetch func(ctx context.Context, page repository.PageQuery) ([]T, error),
) (*Page[T], error) {
	first := maxPageSize
	if args.First != nil {
		if *args.First < 0 {
			return nil, fmt.Errorf("%w: first no puede ser negativo", domain.ErrInvalidInput)
		}
		if int(*args.First) < first {
			first = int(*args.First)
		}
	}

	var afterID int64
	hasAfter := args.After != nil && *args.After != ""
	if hasAfter {
		id, err := relay.DecodeCursor(*args.After)
		if err != nil {
			return nil, fmt.Errorf("%w: cursor after inválido", domain.ErrInvalidInput)
		}
		afterID = id
	}

	items, err := fetch(ctx, repository.PageQuery{AfterID: afterID, Limit: first + 1})
	if err != nil {
		return nil, err
	}
	page := &Page[T]{HasPreviousPage: hasAfter}
	if len(items) > first {
		page.HasNextPage = true
		items = items[:first]
	}
	page.Items = items
	return page, nil
}

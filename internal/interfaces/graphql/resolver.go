// Package graphql expone el ledger mediante un esquema GraphQL (graph-gophers/graphql-go).
package graphql

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/pkg/jwt"
	"github.com/jhoicas/materials-ledger/pkg/logger"
)

//go:embed schema.graphql
var schemaSDL string

// errInternal oculta al cliente los errores de infraestructura (quedan en el log).
var errInternal = errors.New("error interno del servidor")

// Deps casos de uso que necesita el resolver raíz.
type Deps struct {
	Queries       *ledger.QueryUseCase
	CreateInvoice *ledger.CreateInvoiceUseCase
	Parties       *ledger.PartyUseCase
	Statuses      *ledger.InvoiceStatusUseCase
	// AuthRequired exige rol writer en las mutaciones.
	AuthRequired bool
}

// Resolver raíz: atiende los campos de Query y Mutation.
type Resolver struct {
	queries       *ledger.QueryUseCase
	createInvoice *ledger.CreateInvoiceUseCase
	parties       *ledger.PartyUseCase
	statuses      *ledger.InvoiceStatusUseCase
	authRequired  bool
}

// NewResolver construye el resolver raíz.
func NewResolver(d Deps) *Resolver {
	return &Resolver{
		queries:       d.Queries,
		createInvoice: d.CreateInvoice,
		parties:       d.Parties,
		statuses:      d.Statuses,
		authRequired:  d.AuthRequired,
	}
}

// NewSchema parsea el esquema embebido y lo enlaza al resolver.
// maxDepth <= 0 deja la profundidad sin límite.
func NewSchema(r *Resolver, maxDepth int) (*gql.Schema, error) {
	opts := []gql.SchemaOpt{gql.Logger(panicLogger{})}
	if maxDepth > 0 {
		opts = append(opts, gql.MaxDepth(maxDepth))
	}
	schema, err := gql.ParseSchema(schemaSDL, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphql: parse schema: %w", err)
	}
	return schema, nil
}

// panicLogger envía al log de la petición los panics de los resolvers.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	logger.FromContext(ctx).Error().Interface("panic", value).Msg("graphql: panic en resolver")
}

// requireWriter valida el rol para mutaciones cuando la autenticación está activa.
func (r *Resolver) requireWriter(ctx context.Context) error {
	if !r.authRequired {
		return nil
	}
	p, ok := jwt.PrincipalFrom(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !jwt.CanWrite(p.Role) {
		return domain.ErrForbidden
	}
	return nil
}

// publicError deja pasar los errores de dominio y enmascara el resto.
func publicError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		domain.ErrNotFound, domain.ErrInvalidInput, domain.ErrInvalidStatus,
		domain.ErrDuplicate, domain.ErrUnauthorized, domain.ErrForbidden,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	logger.FromContext(ctx).Error().Err(err).Msg("graphql: error interno")
	return errInternal
}

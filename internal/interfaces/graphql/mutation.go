package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
)

type createInvoiceArgs struct {
	ClientID    gql.ID
	SupplierID  gql.ID
	InvoiceDate string
	BaseAmount  float64
	Status      *string
}

// CreateMaterialsInvoice nunca falla por validación: los rechazos van en payload.errors.
func (r *Resolver) CreateMaterialsInvoice(ctx context.Context, args createInvoiceArgs) (*invoicePayloadResolver, error) {
	if err := r.requireWriter(ctx); err != nil {
		return nil, err
	}
	res := r.createInvoice.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		ClientID:    string(args.ClientID),
		SupplierID:  string(args.SupplierID),
		InvoiceDate: args.InvoiceDate,
		BaseAmount:  args.BaseAmount,
		Status:      args.Status,
	})
	payload := &invoicePayloadResolver{}
	if res.Invoice != nil {
		payload.invoice = r.invoice(res.Invoice)
	}
	if len(res.Errors) > 0 {
		payload.errors = make([]*string, len(res.Errors))
		for i := range res.Errors {
			payload.errors[i] = &res.Errors[i]
		}
	}
	return payload, nil
}

type createClientArgs struct {
	Name       string
	MarkupRate float64
}

func (r *Resolver) CreateClient(ctx context.Context, args createClientArgs) (*clientResolver, error) {
	if err := r.requireWriter(ctx); err != nil {
		return nil, err
	}
	c, err := r.parties.CreateClient(ctx, dto.CreateClientRequest{Name: args.Name, MarkupRate: args.MarkupRate})
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return r.client(c), nil
}

func (r *Resolver) CreateSupplier(ctx context.Context, args struct{ Name string }) (*supplierResolver, error) {
	if err := r.requireWriter(ctx); err != nil {
		return nil, err
	}
	s, err := r.parties.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: args.Name})
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return r.supplier(s), nil
}

type updateStatusArgs struct {
	InvoiceID gql.ID
	Status    string
}

func (r *Resolver) UpdateInvoiceStatus(ctx context.Context, args updateStatusArgs) (*invoiceResolver, error) {
	if err := r.requireWriter(ctx); err != nil {
		return nil, err
	}
	inv, err := r.statuses.UpdateStatus(ctx, string(args.InvoiceID), args.Status)
	if err != nil {
		return nil, publicError(ctx, err)
	}
	return r.invoice(inv), nil
}

// invoicePayloadResolver MaterialsInvoicePayload: invoice o errors.
type invoicePayloadResolver struct {
	invoice *invoiceResolver
	errors  []*string
}

func (p *invoicePayloadResolver) Invoice() *invoiceResolver { return p.invoice }

func (p *invoicePayloadResolver) Errors() *[]*string {
	if p.errors == nil {
		return nil
	}
	return &p.errors
}

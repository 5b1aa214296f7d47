package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/internal/domain/entity"
	"github.com/jhoicas/materials-ledger/internal/domain/repository"
)

// PartyUseCase alta de clientes y proveedores.
type PartyUseCase struct {
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	validate     *validator.Validate
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(clientRepo repository.ClientRepository, supplierRepo repository.SupplierRepository) *PartyUseCase {
	return &PartyUseCase{
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateClient crea un cliente. El markup se guarda con 4 decimales (NUMERIC(10,4)).
func (uc *PartyUseCase) CreateClient(ctx context.Context, in dto.CreateClientRequest) (*entity.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	client := &entity.Client{
		Name:       in.Name,
		MarkupRate: decimal.NewFromFloat(in.MarkupRate).Round(4),
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// CreateSupplier crea un proveedor.
func (uc *PartyUseCase) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	supplier := &entity.Supplier{
		Name:      in.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// validationError resume los errores del validador en un mensaje legible envuelto en ErrInvalidInput.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s es requerido", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s admite como máximo %s caracteres", fe.Field(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s debe ser >= %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

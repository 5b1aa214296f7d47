package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

func seedCmd() *cobra.Command {
	var (
		clientName   string
		markupRate   float64
		supplierName string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea un cliente y un proveedor de prueba",
		Long: `Crea un cliente con el recargo indicado y un proveedor, e imprime sus IDs globales
para usarlos en createMaterialsInvoice.

Ejemplo:
  ledgerctl seed --client "Test Client" --markup 0.15 --supplier "Test Supplier"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := context.Background()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			uc := ledger.NewPartyUseCase(postgres.NewClientRepository(pool), postgres.NewSupplierRepository(pool))
			return seed(ctx, cmd, uc, dto.CreateClientRequest{Name: clientName, MarkupRate: markupRate}, dto.CreateSupplierRequest{Name: supplierName})
		},
	}
	cmd.Flags().StringVar(&clientName, "client", "Test Client", "nombre del cliente")
	cmd.Flags().Float64Var(&markupRate, "markup", 0.15, "recargo del cliente (fracción, 0.15 = 15%)")
	cmd.Flags().StringVar(&supplierName, "supplier", "Test Supplier", "nombre del proveedor")
	return cmd
}

func seed(ctx context.Context, cmd *cobra.Command, uc *ledger.PartyUseCase, c dto.CreateClientRequest, s dto.CreateSupplierRequest) error {
	client, err := uc.CreateClient(ctx, c)
	if err != nil {
		return fmt.Errorf("crear cliente: %w", err)
	}
	supplier, err := uc.CreateSupplier(ctx, s)
	if err != nil {
		return fmt.Errorf("crear proveedor: %w", err)
	}
	cmd.Printf("cliente   %-20s id=%d global=%s markup=%s\n", client.Name, client.ID, relay.ToGlobalID(ledger.TypeClient, client.ID), client.MarkupRate.String())
	cmd.Printf("proveedor %-20s id=%d global=%s\n", supplier.Name, supplier.ID, relay.ToGlobalID(ledger.TypeSupplier, supplier.ID))
	return nil
}

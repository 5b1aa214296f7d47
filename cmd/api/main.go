package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/materials-ledger/docs"
	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/materials-ledger/internal/infrastructure/pdf"
	"github.com/jhoicas/materials-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/materials-ledger/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/materials-ledger/internal/interfaces/http"
	"github.com/jhoicas/materials-ledger/pkg/config"
	"github.com/jhoicas/materials-ledger/pkg/logger"
)

// @title                       Materials Ledger API
// @version                     1.0
// @description                 Ledger de facturas de materiales. Consultas y mutaciones en /graphql.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	if cfg.App.MigrateOnStart {
		if err := migrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	debtRepo := postgres.NewDebtRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerMetrics := metrics.NewLedgerMetrics(prometheus.DefaultRegisterer)

	queryUC := ledger.NewQueryUseCase(clientRepo, supplierRepo, invoiceRepo, txRepo, debtRepo, cfg.GraphQL.MaxPageSize)
	createInvoiceUC := ledger.NewCreateInvoiceUseCase(txRunner, clientRepo, supplierRepo, ledgerMetrics)
	partyUC := ledger.NewPartyUseCase(clientRepo, supplierRepo)
	statusUC := ledger.NewInvoiceStatusUseCase(invoiceRepo)

	// PDF: estado de cuenta de la factura (partes, montos y deudas)
	statementUC := ledger.NewStatementUseCase(
		invoiceRepo, clientRepo, supplierRepo, txRepo, debtRepo,
		infrapdf.NewMarotoStatementGenerator(),
	)

	resolver := graphql.NewResolver(graphql.Deps{
		Queries:       queryUC,
		CreateInvoice: createInvoiceUC,
		Parties:       partyUC,
		Statuses:      statusUC,
		AuthRequired:  cfg.JWT.Enabled(),
	})
	schema, err := graphql.NewSchema(resolver, cfg.GraphQL.MaxDepth)
	if err != nil {
		log.Fatal().Err(err).Msg("esquema GraphQL")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Logger:      log,
		GraphQL:     graphql.NewHandler(schema, cfg.GraphQL.Playground, ledgerMetrics),
		Statement:   httpRouter.NewStatementHandler(statementUC),
		Metrics:     promhttp.Handler(),
		HealthCheck: pool.Ping,
		SwaggerFile: "./docs/swagger.json",
		CORSOrigins: cfg.HTTP.CORSOrigins,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func migrateUp(dsn string) (err error) {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); err == nil {
			err = cerr
		}
	}()
	return m.Up()
}

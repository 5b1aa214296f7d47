package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/materials-ledger/internal/infrastructure/postgres"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Administra el esquema de base de datos",
	}
	cmd.AddCommand(migrateUpCmd())
	cmd.AddCommand(migrateDownCmd())
	cmd.AddCommand(migrateVersionCmd())
	return cmd
}

// withMigrator abre el migrador con el DSN configurado y lo cierra al terminar.
func withMigrator(fn func(*postgres.Migrator) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(m)
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				return printVersion(cmd, m)
			})
		},
	}
}

func migrateDownCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones (todas si --steps es 0)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 0 {
				return fmt.Errorf("--steps debe ser >= 0")
			}
			return withMigrator(func(m *postgres.Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}
				return printVersion(cmd, m)
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "número de migraciones a revertir")
	return cmd
}

func migrateVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión actual del esquema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				return printVersion(cmd, m)
			})
		},
	}
}

func printVersion(cmd *cobra.Command, m *postgres.Migrator) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if dirty {
		cmd.Printf("versión del esquema: %d (dirty)\n", v)
		return nil
	}
	cmd.Printf("versión del esquema: %d\n", v)
	return nil
}

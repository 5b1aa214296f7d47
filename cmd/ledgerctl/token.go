package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/materials-ledger/pkg/jwt"
)

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		secret  string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para la API (roles reader o writer)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !jwt.KnownRole(role) {
				return fmt.Errorf("rol %q inválido: use %s o %s", role, jwt.RoleReader, jwt.RoleWriter)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if secret == "" {
				secret = cfg.JWT.Secret
			}
			if secret == "" {
				return fmt.Errorf("JWT_SECRET no configurado")
			}
			tok, err := jwt.Generate(secret, subject, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			cmd.Println(tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "ledgerctl", "sujeto del token (sub)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleReader, "rol: reader o writer")
	cmd.Flags().StringVar(&secret, "secret", "", "secreto HMAC (por defecto JWT_SECRET)")
	return cmd
}

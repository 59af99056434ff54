package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rfm-dashboard/pkg/jwt"
)

func newTokenCmd(c *cli) *cobra.Command {
	var (
		subject string
		role    string
		minutes int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para la API (requiere JWT_SECRET)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.JWT.Enabled() {
				return fmt.Errorf("JWT_SECRET vacío: la API no exige token")
			}
			if !jwt.ValidRole(role) {
				return fmt.Errorf("rol inválido %q (%s|%s)", role, jwt.RoleViewer, jwt.RoleAnalyst)
			}
			if minutes <= 0 {
				minutes = c.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(c.cfg.JWT.Secret, subject, role, c.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "identidad del lector (ej. email)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleViewer, "viewer | analyst")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

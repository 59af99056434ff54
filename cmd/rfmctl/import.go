package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/postgres"
)

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Carga el CSV (--file o DATA_PATH) en la tabla rfm_customers de PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			path := c.file
			if path == "" {
				path = c.cfg.Data.Path
			}

			customers, err := csvsource.New(path, c.cfg.Data.Encoding).Load(ctx)
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, c.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				return err
			}
			for _, m := range applied {
				c.log.Info().Str("migration", m).Msg("migración aplicada")
			}

			n, err := postgres.NewCustomerRepository(pool).Import(ctx, customers)
			if err != nil {
				return err
			}
			c.log.Info().Int64("rows", n).Str("file", path).Msg("dataset importado")
			fmt.Fprintf(cmd.OutOrStdout(), "%d filas importadas desde %s\n", n, path)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rfm-dashboard/docs"
)

func newDocsCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Escribe swagger.json (lo publica el servidor en /docs)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				out = c.cfg.HTTP.DocsPath
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(out, []byte(docs.SwaggerInfo.ReadDoc()), 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "ruta de salida (por defecto HTTP_DOCS_PATH)")
	return cmd
}

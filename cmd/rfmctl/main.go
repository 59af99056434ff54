// Comando rfmctl: tareas de operación del dashboard fuera del servidor HTTP
// (importar el CSV a PostgreSQL, resumen por consola, exportaciones, tokens y docs).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/domain/repository"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/datasource"
	"github.com/jhoicas/rfm-dashboard/pkg/config"
	"github.com/jhoicas/rfm-dashboard/pkg/logger"
)

// cli estado compartido por los subcomandos.
type cli struct {
	cfg  *config.Config
	log  *logger.Logger
	file string // --file: CSV explícito en lugar de DATA_SOURCE
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "rfmctl",
		Short:         "Herramientas del dashboard de segmentación RFM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.file, "file", "", "CSV segmentado a usar en lugar de DATA_SOURCE")

	root.AddCommand(
		newImportCmd(c),
		newSummaryCmd(c),
		newExportCmd(c),
		newTokenCmd(c),
		newDocsCmd(c),
	)
	return root
}

// loadStore abre la fuente (--file o la configurada) y carga el snapshot.
func (c *cli) loadStore(ctx context.Context) (*segmentation.Store, func(), error) {
	var (
		src     repository.CustomerSource
		closeFn = func() {}
	)
	if c.file != "" {
		src = csvsource.New(c.file, c.cfg.Data.Encoding)
	} else {
		opened, err := datasource.Open(ctx, c.cfg)
		if err != nil {
			return nil, nil, err
		}
		src, closeFn = opened.Source, opened.Close
	}

	store := segmentation.NewStore(src)
	if _, err := store.Reload(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return store, closeFn, nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
	infrapdf "github.com/jhoicas/rfm-dashboard/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/rfm-dashboard/internal/infrastructure/xlsx"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		formatFlag string
		out        string
		segments   []string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Genera el reporte PDF o la descarga XLSX/CSV de clientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			selected, err := segmentation.ParseSegments(segments, false)
			if err != nil {
				return err
			}

			store, closeFn, err := c.loadStore(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			uc := report.NewExportUseCase(
				store,
				segmentation.NewInsightsUseCase(store, c.cfg.Insights.ChurnDays),
				infrapdf.NewMarotoReportGenerator(),
				infraxlsx.NewWorkbookGenerator(),
				csvsource.Encoder{},
				c.cfg.App.Name,
			)

			var f *report.File
			switch formatFlag {
			case "pdf":
				f, err = uc.ComparisonPDF(ctx)
			case "xlsx":
				f, err = uc.CustomersXLSX(ctx, selected)
			case "csv":
				f, err = uc.CustomersCSV(ctx, selected)
			default:
				return fmt.Errorf("formato inválido %q (pdf|xlsx|csv)", formatFlag)
			}
			if err != nil {
				return err
			}

			// --out puede ser un directorio: se conserva el nombre generado.
			target := out
			if info, statErr := os.Stat(out); statErr == nil && info.IsDir() {
				target = filepath.Join(out, f.Name)
			}
			if err := os.WriteFile(target, f.Data, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", target, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
	cmd.Flags().StringVar(&formatFlag, "format", "pdf", "pdf | xlsx | csv")
	cmd.Flags().StringVar(&out, "out", ".", "archivo o directorio de salida")
	cmd.Flags().StringArrayVar(&segments, "segment", nil, "segmento a incluir (repetible; por defecto todos)")
	return cmd
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/pkg/format"
)

func newSummaryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Imprime los totales del sidebar y la tabla comparativa de segmentos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, closeFn, err := c.loadStore(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			sb, err := segmentation.NewSidebarUseCase(store).Sidebar(ctx, nil)
			if err != nil {
				return err
			}
			ins, err := segmentation.NewInsightsUseCase(store, c.cfg.Insights.ChurnDays).Insights(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fuente: %s (%s filas)\n", sb.Dataset.Source, format.Int(sb.Dataset.Rows))
			fmt.Fprintf(out, "Total Customers: %s\nTotal Revenue: %s\nAvg Customer Value: %s\n\n",
				format.Int(sb.TotalCustomers), format.Money(sb.TotalRevenue), format.Money(sb.AvgCustomerValue))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "Segment\tCustomers\tAvg Recency\tAvg Frequency\tAvg Monetary\tTotal Revenue\tRevenue %\t")
			for _, r := range ins.Comparison {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
					r.Segment,
					format.Int(r.CustomerCount),
					format.Fixed(r.AvgRecency, 0),
					format.Fixed(r.AvgFrequency, 1),
					format.MoneyFloat(r.AvgMonetary),
					format.Money(r.TotalRevenue),
					format.Percent(r.RevenuePct, 1),
				)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nChurn risk: %s de clientes sin comprar hace %d+ días\n",
				format.Percent(ins.ChurnRisk.DormantPct, 1), ins.ChurnRisk.ThresholdDays)
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-advisor/internal/report"
	"github.com/vfg2006/ads-advisor/internal/usecases/insighting"
	"github.com/vfg2006/ads-advisor/pkg/log"
)

// NewGenerateInsightsCommand monta o comando de geração de insights
func NewGenerateInsightsCommand(deps Dependencies) *cobra.Command {
	cfg := deps.config()

	var (
		metric          string
		target          float64
		businessContext string
		output          string
	)

	cmd := &cobra.Command{
		Use:     "generate-insights",
		Short:   "Generate AI-powered advertising insights",
		Example: `  generate-insights --metric roas --target 1.5 --context ecommerce`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			ctx, _ := log.WithCorrelationID(cmd.Context())
			log.ForContext(ctx).WithField("command", cmd.Name()).Debug("iniciando geração de insights")

			insights := insighting.NewService().Generate(ctx, metric, target, businessContext)

			return report.Write(deps.stdout(), output, insights, report.WriteInsightReport)
		},
	}

	cmd.SetOut(deps.stdout())
	cmd.Flags().StringVar(&metric, "metric", insighting.DefaultMetric, "Metric to optimize (roas, cpa, ctr)")
	cmd.Flags().Float64Var(&target, "target", insighting.DefaultTarget, "Target metric value")
	cmd.Flags().StringVar(&businessContext, "context", insighting.DefaultContext, "Business context (ecommerce, saas, services)")
	cmd.Flags().StringVar(&output, "output", cfg.Report.OutputFormat, "Output format (text, json, yaml)")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-advisor/internal/report"
	"github.com/vfg2006/ads-advisor/pkg/log"
)

// NewAnalyzeCampaignsCommand monta o comando de análise de campanhas
func NewAnalyzeCampaignsCommand(deps Dependencies) *cobra.Command {
	cfg := deps.config()

	var (
		accountID string
		lookback  int
		output    string
	)

	cmd := &cobra.Command{
		Use:     "analyze-campaigns",
		Short:   "Analyze campaign performance with AI",
		Example: "  analyze-campaigns --account-id ACT_1234567890 --lookback 7",
		Args:    cobra.NoArgs,
		PreRunE: requireFlags("account-id"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			ctx, _ := log.WithCorrelationID(cmd.Context())
			log.ForContext(ctx).WithFields(log.Fields{
				"command":    cmd.Name(),
				"account_id": accountID,
			}).Debug("iniciando análise de campanhas")

			analysis, err := deps.campaignReporter().Analyze(ctx, accountID, lookback)
			if err != nil {
				return err
			}

			return report.Write(deps.stdout(), output, analysis, report.WriteCampaignAnalysis)
		},
	}

	cmd.SetOut(deps.stdout())
	cmd.Flags().StringVar(&accountID, "account-id", "", "Meta Business Account ID (required)")
	cmd.Flags().IntVar(&lookback, "lookback", cfg.Report.DefaultLookbackDays, "Days to analyze")
	cmd.Flags().StringVar(&output, "output", cfg.Report.OutputFormat, "Output format (text, json, yaml)")

	return cmd
}

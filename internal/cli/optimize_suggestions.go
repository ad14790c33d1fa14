package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-advisor/internal/report"
	"github.com/vfg2006/ads-advisor/internal/usecases/suggesting"
	"github.com/vfg2006/ads-advisor/pkg/log"
)

// NewOptimizeSuggestionsCommand monta o comando de sugestões de otimização
func NewOptimizeSuggestionsCommand(deps Dependencies) *cobra.Command {
	cfg := deps.config()

	var (
		accountID    string
		campaignName string
		output       string
	)

	cmd := &cobra.Command{
		Use:     "optimize-suggestions",
		Short:   "Generate AI optimization suggestions",
		Example: `  optimize-suggestions --account-id ACT_1234567890 --campaign-name "Q1_Brand"`,
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
			}).Debug("iniciando geração de sugestões")

			suggestions, err := suggesting.NewService().Generate(ctx, accountID, campaignName)
			if err != nil {
				return err
			}

			return report.Write(deps.stdout(), output, suggestions, report.WriteSuggestionReport)
		},
	}

	cmd.SetOut(deps.stdout())
	cmd.Flags().StringVar(&accountID, "account-id", "", "Meta Business Account ID (required)")
	cmd.Flags().StringVar(&campaignName, "campaign-name", "", "Specific campaign to analyze (optional)")
	cmd.Flags().StringVar(&output, "output", cfg.Report.OutputFormat, "Output format (text, json, yaml)")

	return cmd
}

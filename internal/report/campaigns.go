package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/ads-advisor/internal/domain"
	"github.com/vfg2006/ads-advisor/pkg/utils"
)

// WriteCampaignAnalysis escreve o resumo por campanha, os agregados e as recomendações
func WriteCampaignAnalysis(w io.Writer, a *domain.CampaignAnalysis) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nAnalyzing campaigns for account: %s\n", a.AccountID)
	fmt.Fprintf(&b, "Lookback period: %d days\n", a.LookbackDays)
	fmt.Fprintf(&b, "%s\n\n", utils.Rule("="))

	fmt.Fprintf(&b, "Campaign Performance Summary (%s to %s):\n\n", a.StartDate, a.EndDate)

	for _, c := range a.Campaigns {
		fmt.Fprintf(&b, "Campaign: %s\n", c.Name)
		fmt.Fprintf(&b, "  ID: %s\n", c.ID)
		fmt.Fprintf(&b, "  Spend: $%.2f\n", c.Spend)
		fmt.Fprintf(&b, "  Impressions: %s\n", utils.FormatThousands(c.Impressions))
		fmt.Fprintf(&b, "  Clicks: %s\n", utils.FormatThousands(c.Clicks))
		fmt.Fprintf(&b, "  CTR: %.2f%%\n", c.CTR*100)
		fmt.Fprintf(&b, "  CPC: $%.2f\n", c.CPC)
		fmt.Fprintf(&b, "  Conversions: %d\n", c.Conversions)
		fmt.Fprintf(&b, "  CPA: $%.2f\n", c.CPA)
		fmt.Fprintf(&b, "  Conv Value: $%.2f\n", c.ConversionValue)
		fmt.Fprintf(&b, "  ROAS: %.2fx\n", c.ROAS)
		fmt.Fprintf(&b, "%s\n", utils.Rule("-"))
	}

	agg := a.Aggregate
	b.WriteString("\nAggregate Metrics:\n")
	fmt.Fprintf(&b, "  Total Spend: $%.2f\n", agg.TotalSpend)
	fmt.Fprintf(&b, "  Total Conversions: %d\n", agg.TotalConversions)
	fmt.Fprintf(&b, "  Overall CPA: $%.2f\n", agg.OverallCPA)
	fmt.Fprintf(&b, "  Best Performer: %s (ROAS: %.2fx)\n\n", agg.BestROASCampaign, agg.BestROAS)

	b.WriteString("AI Analysis:\n")
	for _, recommendation := range a.Recommendations {
		fmt.Fprintf(&b, "  • %s\n", recommendation)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/ads-advisor/internal/domain"
	"github.com/vfg2006/ads-advisor/pkg/utils"
)

func sectionTitle(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n%s\n", utils.Center(title, utils.RuleWidth, "-"))
}

// WriteSuggestionReport escreve as quatro seções de sugestões na ordem fixa
func WriteSuggestionReport(w io.Writer, r *domain.SuggestionReport) error {
	var b strings.Builder
	s := r.Suggestions

	b.WriteString("\nAI Optimization Suggestions\n")
	fmt.Fprintf(&b, "Account: %s\n", r.AccountID)
	if r.CampaignName != "" {
		fmt.Fprintf(&b, "Campaign: %s\n", r.CampaignName)
	}
	fmt.Fprintf(&b, "%s\n\n", utils.Rule("="))

	sectionTitle(&b, "HIGH PRIORITY ACTIONS")
	for _, action := range s.ImmediateActions {
		fmt.Fprintf(&b, "\n[%s] %s\n", action.Priority, action.Action)
		fmt.Fprintf(&b, "  Expected Impact: %s\n", action.ExpectedImpact)
		fmt.Fprintf(&b, "  Implementation Time: %s\n", action.ImplementationTime)
	}

	sectionTitle(&b, "CREATIVE OPTIMIZATIONS")
	for _, test := range s.CreativeOptimizations {
		fmt.Fprintf(&b, "\nTest: %s\n", test.Test)
		fmt.Fprintf(&b, "  Rationale: %s\n", test.Rationale)
		fmt.Fprintf(&b, "  Estimated Lift: %s\n", test.EstimatedLift)
		fmt.Fprintf(&b, "  Duration: %s\n", test.Duration)
	}

	sectionTitle(&b, "BIDDING STRATEGY RECOMMENDATIONS")
	for _, strategy := range s.BiddingStrategies {
		fmt.Fprintf(&b, "\nCurrent: %s\n", strategy.Current)
		fmt.Fprintf(&b, "  Recommendation: %s\n", strategy.Recommendation)
		fmt.Fprintf(&b, "  Reason: %s\n", strategy.Reason)
		fmt.Fprintf(&b, "  Expected: %s\n", strategy.ExpectedImprovement)
	}

	sectionTitle(&b, "AUDIENCE RECOMMENDATIONS")
	for _, audience := range s.AudienceRecommendations {
		fmt.Fprintf(&b, "\n[%s] %s\n", audience.Priority, audience.Type)
		if label, value := audience.SourceLine(); label != "" {
			fmt.Fprintf(&b, "  %s: %s\n", label, value)
		}
		fmt.Fprintf(&b, "  Size: %s\n", audience.Size)
		fmt.Fprintf(&b, "  Expected CPA/CTR: %s\n", audience.Expected())
	}

	fmt.Fprintf(&b, "\n%s\n\n", utils.Rule("="))

	_, err := io.WriteString(w, b.String())
	return err
}

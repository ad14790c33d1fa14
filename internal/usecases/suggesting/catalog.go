package suggesting

import "github.com/vfg2006/ads-advisor/internal/domain"

// catalog é o conjunto fixo de sugestões, na ordem de exibição
var catalog = domain.SuggestionSet{
	ImmediateActions: []domain.ImmediateAction{
		{
			Priority:           "HIGH",
			Action:             "Pause underperforming ad sets (CTR < 0.8%)",
			ExpectedImpact:     "Reduce wasted spend by 5-10%",
			ImplementationTime: "5 minutes",
		},
		{
			Priority:           "HIGH",
			Action:             "Increase budget to top-performing ad sets by 15%",
			ExpectedImpact:     "Improve ROAS by 0.1-0.2x",
			ImplementationTime: "2 minutes",
		},
		{
			Priority:           "MEDIUM",
			Action:             "Update targeting to exclude high-cost audiences",
			ExpectedImpact:     "Reduce CPA by 5-15%",
			ImplementationTime: "15 minutes",
		},
	},
	CreativeOptimizations: []domain.CreativeTest{
		{
			Test:          "A/B test 3 new headline variations",
			Rationale:     "Current headlines underperforming vs competitors",
			EstimatedLift: "10-20% CTR improvement",
			Duration:      "7 days",
		},
		{
			Test:          "Switch image format from static to carousel",
			Rationale:     "Carousel ads averaging 25% higher engagement",
			EstimatedLift: "5-15% CTR improvement",
			Duration:      "7 days",
		},
		{
			Test:          `Test new CTA button text: "Shop Now" vs "Explore"`,
			Rationale:     "Different CTAs resonate differently by audience",
			EstimatedLift: "3-8% conversion improvement",
			Duration:      "5 days",
		},
	},
	BiddingStrategies: []domain.BiddingStrategy{
		{
			Current:             "CPA Optimization at $30",
			Recommendation:      "Switch to ROAS at 1.5x for next 7 days",
			Reason:              "Account has sufficient conversion data",
			ExpectedImprovement: "Better scaling and budget utilization",
		},
		{
			Current:             "Manual bidding",
			Recommendation:      "Enable Dynamic Ads + CPA Optimization",
			Reason:              "Automated optimization typically outperforms manual",
			ExpectedImprovement: "15-25% CPA reduction",
		},
	},
	AudienceRecommendations: []domain.AudienceRecommendation{
		{
			Type:        "Lookalike Audience",
			Source:      "Website visitors (last 30 days)",
			Size:        "1-2% lookalike",
			ExpectedCPA: "$15-20 (vs $30 current)",
			Priority:    "HIGH",
		},
		{
			Type:        "Saved Audience",
			Definition:  "People interested in [competitor] + age 25-45",
			Size:        "500K - 1M",
			ExpectedCTR: "0.8-1.2%",
			Priority:    "MEDIUM",
		},
	},
}

// Catalog retorna uma cópia do conjunto fixo de sugestões
func Catalog() domain.SuggestionSet {
	return domain.SuggestionSet{
		ImmediateActions:        append([]domain.ImmediateAction(nil), catalog.ImmediateActions...),
		CreativeOptimizations:   append([]domain.CreativeTest(nil), catalog.CreativeOptimizations...),
		BiddingStrategies:       append([]domain.BiddingStrategy(nil), catalog.BiddingStrategies...),
		AudienceRecommendations: append([]domain.AudienceRecommendation(nil), catalog.AudienceRecommendations...),
	}
}

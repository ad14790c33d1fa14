package insighting

import "github.com/vfg2006/ads-advisor/internal/domain"

const (
	DefaultMetric  = "roas"
	DefaultTarget  = 1.5
	DefaultContext = "ecommerce"
)

// insightsTable indexa as entradas por métrica e depois por contexto. Somente leitura.
var insightsTable = map[string]map[string]domain.InsightEntry{
	"roas": {
		"ecommerce": {
			CurrentBenchmark: "1.2x",
			IndustryAverage:  "1.5x",
			HighPerformer:    "2.0x+",
			Strategies: []string{
				"Implement dynamic product ads showing personalized recommendations",
				"Use lookback windows for retargeting (7-30 days based on product type)",
				"A/B test bidding strategies (CPA vs ROAS optimization)",
				"Segment audiences by purchase history and value",
				"Test seasonal messaging and urgency tactics",
			},
		},
		"saas": {
			CurrentBenchmark: "1.5x",
			IndustryAverage:  "2.0x",
			HighPerformer:    "3.0x+",
			Strategies: []string{
				"Focus on lead quality over quantity",
				"Implement multi-touch attribution (sales funnel tracking)",
				"Use website event tracking for MQL/SQL conversion",
				"Test case study and testimonial creatives",
				"Create lookalike audiences from trial users",
			},
		},
	},
	"cpa": {
		"ecommerce": {
			CurrentBenchmark: "$30",
			IndustryAverage:  "$20",
			TopPerformer:     "$10",
			Strategies: []string{
				"Improve landing page conversion rate (test layout, copy, CTAs)",
				"Implement post-purchase optimization (email follow-ups)",
				"Use value-based bidding (bid on total customer value)",
				"Create separate campaigns for new vs existing customers",
				"Test different offer types (discount % vs flat $)",
			},
		},
	},
	"ctr": {
		"ecommerce": {
			CurrentBenchmark: "1.5%",
			IndustryAverage:  "0.9%",
			TopPerformer:     "3.0%+",
			Strategies: []string{
				"Use carousel ads to showcase multiple products",
				"Test playable ads for interactive engagement",
				"Implement dynamic creative optimization (DCO)",
				"Create curiosity-driven headlines",
				"Test emojis and special characters in ad copy",
			},
		},
	},
}

// Lookup busca a entrada por (métrica, contexto) com comparação exata e sensível a maiúsculas.
// Se qualquer chave não existir, retorna a entrada padrão e found = false.
// A entrada devolvida é uma cópia; a tabela nunca é alterada.
func Lookup(metric, businessContext string) (entry domain.InsightEntry, found bool) {
	if contexts, ok := insightsTable[metric]; ok {
		if e, ok := contexts[businessContext]; ok {
			return cloneEntry(e), true
		}
	}

	return cloneEntry(insightsTable[DefaultMetric][DefaultContext]), false
}

func cloneEntry(e domain.InsightEntry) domain.InsightEntry {
	e.Strategies = append([]string(nil), e.Strategies...)
	return e
}

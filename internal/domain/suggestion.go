package domain

import "github.com/vfg2006/ads-advisor/pkg/utils"

type ImmediateAction struct {
	Priority           string `json:"priority" yaml:"priority"`
	Action             string `json:"action" yaml:"action"`
	ExpectedImpact     string `json:"expected_impact" yaml:"expected_impact"`
	ImplementationTime string `json:"implementation_time" yaml:"implementation_time"`
}

type CreativeTest struct {
	Test          string `json:"test" yaml:"test"`
	Rationale     string `json:"rationale" yaml:"rationale"`
	EstimatedLift string `json:"estimated_lift" yaml:"estimated_lift"`
	Duration      string `json:"duration" yaml:"duration"`
}

type BiddingStrategy struct {
	Current             string `json:"current" yaml:"current"`
	Recommendation      string `json:"recommendation" yaml:"recommendation"`
	Reason              string `json:"reason" yaml:"reason"`
	ExpectedImprovement string `json:"expected_improvement" yaml:"expected_improvement"`
}

// AudienceRecommendation tem campos alternativos: Source ou Definition, ExpectedCPA ou ExpectedCTR
type AudienceRecommendation struct {
	Type        string `json:"type" yaml:"type"`
	Source      string `json:"source,omitempty" yaml:"source,omitempty"`
	Definition  string `json:"definition,omitempty" yaml:"definition,omitempty"`
	Size        string `json:"size" yaml:"size"`
	ExpectedCPA string `json:"expected_cpa,omitempty" yaml:"expected_cpa,omitempty"`
	ExpectedCTR string `json:"expected_ctr,omitempty" yaml:"expected_ctr,omitempty"`
	Priority    string `json:"priority" yaml:"priority"`
}

type SuggestionSet struct {
	ImmediateActions        []ImmediateAction        `json:"immediate_actions" yaml:"immediate_actions"`
	CreativeOptimizations   []CreativeTest           `json:"creative_optimizations" yaml:"creative_optimizations"`
	BiddingStrategies       []BiddingStrategy        `json:"bidding_strategies" yaml:"bidding_strategies"`
	AudienceRecommendations []AudienceRecommendation `json:"audience_recommendations" yaml:"audience_recommendations"`
}

// SuggestionReport é o resultado do gerador de sugestões
type SuggestionReport struct {
	AccountID    string        `json:"account_id" yaml:"account_id"`
	CampaignName string        `json:"campaign_name,omitempty" yaml:"campaign_name,omitempty"`
	Suggestions  SuggestionSet `json:"suggestions" yaml:"suggestions"`
}

// SourceLine retorna o rótulo e o valor da linha de origem: Source, senão Definition.
// Retorna rótulo vazio quando nenhum dos dois existe.
func (a AudienceRecommendation) SourceLine() (label string, value string) {
	switch {
	case a.Source != "":
		return "Source", a.Source
	case a.Definition != "":
		return "Definition", a.Definition
	}
	return "", ""
}

// Expected prioriza expected_cpa, depois expected_ctr
func (a AudienceRecommendation) Expected() string {
	return utils.FirstNonEmpty(a.ExpectedCPA, a.ExpectedCTR, NotAvailable)
}

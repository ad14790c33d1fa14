package domain

// CampaignRecord representa o desempenho de uma campanha no período.
// CTR, CPC, CPA e ROAS vêm pré-calculados da origem e não são derivados das contagens.
type CampaignRecord struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Spend           float64 `json:"spend" yaml:"spend"`
	Impressions     int     `json:"impressions" yaml:"impressions"`
	Clicks          int     `json:"clicks" yaml:"clicks"`
	Conversions     int     `json:"conversions" yaml:"conversions"`
	ConversionValue float64 `json:"conversion_value" yaml:"conversion_value"`
	CTR             float64 `json:"ctr" yaml:"ctr"`
	CPC             float64 `json:"cpc" yaml:"cpc"`
	CPA             float64 `json:"cpa" yaml:"cpa"`
	ROAS            float64 `json:"roas" yaml:"roas"`
}

// AggregateResult contém os agregados calculados sobre todas as campanhas
type AggregateResult struct {
	TotalSpend       float64 `json:"total_spend" yaml:"total_spend"`
	TotalConversions int     `json:"total_conversions" yaml:"total_conversions"`
	OverallCPA       float64 `json:"overall_cpa" yaml:"overall_cpa"`
	BestROASCampaign string  `json:"best_roas_campaign" yaml:"best_roas_campaign"`
	BestROAS         float64 `json:"best_roas" yaml:"best_roas"`
}

// CampaignAnalysis é o resultado da análise de campanhas de uma conta
type CampaignAnalysis struct {
	AccountID       string           `json:"account_id" yaml:"account_id"`
	LookbackDays    int              `json:"lookback_days" yaml:"lookback_days"`
	StartDate       string           `json:"start_date" yaml:"start_date"`
	EndDate         string           `json:"end_date" yaml:"end_date"`
	AnalysisPeriod  string           `json:"analysis_period" yaml:"analysis_period"`
	TotalCampaigns  int              `json:"total_campaigns" yaml:"total_campaigns"`
	Campaigns       []CampaignRecord `json:"campaigns" yaml:"campaigns"`
	Aggregate       AggregateResult  `json:"aggregate" yaml:"aggregate"`
	KeyInsights     []string         `json:"key_insights" yaml:"key_insights"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}

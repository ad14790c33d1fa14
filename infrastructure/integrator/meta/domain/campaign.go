package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// CampaignInsight é uma linha de insights de campanha no formato da Graph API
type CampaignInsight struct {
	CampaignID      string  `json:"campaign_id"`
	CampaignName    string  `json:"campaign_name"`
	Spend           float64 `json:"spend"`
	Impressions     int     `json:"impressions"`
	Clicks          int     `json:"clicks"`
	Conversions     int     `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	CPA             float64 `json:"cpa"`
	ROAS            float64 `json:"roas"`
}

// CampaignInsightsResponse é o envelope paginado devolvido pela Graph API
type CampaignInsightsResponse struct {
	Data   []CampaignInsight `json:"data"`
	Paging Paging            `json:"paging"`
}

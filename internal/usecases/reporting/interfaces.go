package reporting

import (
	"context"

	"github.com/vfg2006/ads-advisor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// CampaignSource fornece os registros de campanha de uma conta
type CampaignSource interface {
	// GetCampaignInsights obtém as campanhas da conta, na ordem em que devem ser exibidas
	GetCampaignInsights(accountID string, filters *domain.InsigthFilters) ([]domain.CampaignRecord, error)
}

// CampaignReporter analisa o desempenho das campanhas de uma conta
type CampaignReporter interface {
	Analyze(ctx context.Context, accountID string, lookbackDays int) (*domain.CampaignAnalysis, error)
}

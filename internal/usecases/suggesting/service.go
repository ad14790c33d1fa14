package suggesting

import (
	"context"
	"errors"

	"github.com/vfg2006/ads-advisor/internal/domain"
	"github.com/vfg2006/ads-advisor/pkg/cliErrors"
	"github.com/vfg2006/ads-advisor/pkg/log"
)

var ErrAccountIDRequired = errors.New("account ID is required")

// SuggestionGenerator produz as sugestões de otimização de uma conta
type SuggestionGenerator interface {
	Generate(ctx context.Context, accountID string, campaignName string) (*domain.SuggestionReport, error)
}

type Service struct{}

func NewService() SuggestionGenerator {
	return &Service{}
}

// Generate devolve o catálogo fixo. campaignName vazio significa "nenhuma campanha".
func (s *Service) Generate(ctx context.Context, accountID string, campaignName string) (*domain.SuggestionReport, error) {
	if accountID == "" {
		return nil, cliErrors.WithCode(ErrAccountIDRequired, cliErrors.ErrMissingRequiredData)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"account_id":    accountID,
		"campaign_name": campaignName,
	}).Debug("sugestões: catálogo gerado")

	return &domain.SuggestionReport{
		AccountID:    accountID,
		CampaignName: campaignName,
		Suggestions:  Catalog(),
	}, nil
}

package meta

import (
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-advisor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-advisor/internal/config"
	"github.com/vfg2006/ads-advisor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed fixtures/campaign_insights.json
var sampleCampaignInsights []byte

// MetaIntegrator serve insights de campanha simulados no formato da Graph API.
// Não há chamada de rede: todas as contas recebem as mesmas três campanhas de exemplo.
type MetaIntegrator struct {
	cfg     *config.Config
	payload []byte
}

func New(cfg *config.Config) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:     cfg,
		payload: sampleCampaignInsights,
	}
}

// NewWithPayload cria um integrador que decodifica o payload informado em vez da amostra embutida
func NewWithPayload(cfg *config.Config, payload []byte) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:     cfg,
		payload: payload,
	}
}

// GetCampaignInsights retorna as campanhas da conta na ordem da resposta.
// Os filtros de data são apenas registrados; a amostra não é filtrada.
func (s *MetaIntegrator) GetCampaignInsights(accountID string, filters *domain.InsigthFilters) ([]domain.CampaignRecord, error) {
	resp := &metadomain.CampaignInsightsResponse{}
	if err := json.Unmarshal(s.payload, resp); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Debug("insights: failed to decode campaign insights")
		return nil, errors.Wrap(err, "decode campaign insights")
	}

	fields := logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(resp.Data),
	}
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		fields["date_start"] = filters.StartDate.Format("2006-01-02")
		fields["date_stop"] = filters.EndDate.Format("2006-01-02")
	}
	if s.cfg != nil {
		fields["api_url"] = s.cfg.Meta.URL
	}
	logrus.WithFields(fields).Debug("insights: loaded simulated campaign insights")

	return FactoryCampaignRecords(resp.Data)
}

// FactoryCampaignRecords converte linhas da Graph API em registros de domínio
func FactoryCampaignRecords(insights []metadomain.CampaignInsight) ([]domain.CampaignRecord, error) {
	records := make([]domain.CampaignRecord, 0, len(insights))

	for i, insight := range insights {
		if insight.Impressions < 0 || insight.Clicks < 0 || insight.Conversions < 0 {
			return nil, fmt.Errorf("campaign %s (row %d): negative counts are not allowed", insight.CampaignID, i)
		}

		records = append(records, domain.CampaignRecord{
			ID:              insight.CampaignID,
			Name:            insight.CampaignName,
			Spend:           insight.Spend,
			Impressions:     insight.Impressions,
			Clicks:          insight.Clicks,
			Conversions:     insight.Conversions,
			ConversionValue: insight.ConversionValue,
			CTR:             insight.CTR,
			CPC:             insight.CPC,
			CPA:             insight.CPA,
			ROAS:            insight.ROAS,
		})
	}

	return records, nil
}

package insighting

import (
	"context"

	"github.com/vfg2006/ads-advisor/internal/domain"
	"github.com/vfg2006/ads-advisor/pkg/log"
)

type Service struct{}

func NewService() InsightGenerator {
	return &Service{}
}

// Generate resolve a entrada da tabela e monta o relatório com o alvo informado
func (s *Service) Generate(ctx context.Context, metric string, target float64, businessContext string) *domain.InsightReport {
	entry, found := Lookup(metric, businessContext)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"metric":  metric,
		"context": businessContext,
	})
	if !found {
		logger.Debugf("insights: combinação desconhecida, usando %s/%s", DefaultMetric, DefaultContext)
	} else {
		logger.Debug("insights: entrada encontrada")
	}

	return &domain.InsightReport{
		Metric:       metric,
		Target:       target,
		Context:      businessContext,
		Benchmarks:   entry,
		Strategies:   append([]string(nil), entry.Strategies...),
		FallbackUsed: !found,
	}
}

package insighting

import (
	"context"

	"github.com/vfg2006/ads-advisor/internal/domain"
)

// InsightGenerator gera benchmarks e estratégias para uma métrica em um contexto de negócio
type InsightGenerator interface {
	// Generate nunca falha: combinações desconhecidas usam a entrada padrão (roas, ecommerce)
	Generate(ctx context.Context, metric string, target float64, businessContext string) *domain.InsightReport
}

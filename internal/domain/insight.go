package domain

import (
	"time"

	"github.com/vfg2006/ads-advisor/pkg/utils"
)

type InsigthFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// InsightEntry reúne benchmarks e estratégias de uma combinação (métrica, contexto)
type InsightEntry struct {
	CurrentBenchmark string   `json:"current_benchmark,omitempty" yaml:"current_benchmark,omitempty"`
	IndustryAverage  string   `json:"industry_average,omitempty" yaml:"industry_average,omitempty"`
	HighPerformer    string   `json:"high_performer,omitempty" yaml:"high_performer,omitempty"`
	TopPerformer     string   `json:"top_performer,omitempty" yaml:"top_performer,omitempty"`
	Strategies       []string `json:"strategies" yaml:"strategies"`
}

// InsightReport é o resultado do gerador de insights
type InsightReport struct {
	Metric       string       `json:"metric" yaml:"metric"`
	Target       float64      `json:"target" yaml:"target"`
	Context      string       `json:"context" yaml:"context"`
	Benchmarks   InsightEntry `json:"benchmarks" yaml:"benchmarks"`
	Strategies   []string     `json:"strategies" yaml:"strategies"`
	FallbackUsed bool         `json:"fallback_used" yaml:"fallback_used"`
}

// NotAvailable é exibido quando um benchmark não existe na entrada
const NotAvailable = "N/A"

// CurrentBenchmarkOrDefault retorna o benchmark atual ou N/A
func (e InsightEntry) CurrentBenchmarkOrDefault() string {
	return utils.FirstNonEmpty(e.CurrentBenchmark, NotAvailable)
}

// IndustryAverageOrDefault retorna a média do setor ou N/A
func (e InsightEntry) IndustryAverageOrDefault() string {
	return utils.FirstNonEmpty(e.IndustryAverage, NotAvailable)
}

// TopPerformers prioriza high_performer, depois top_performer
func (e InsightEntry) TopPerformers() string {
	return utils.FirstNonEmpty(e.HighPerformer, e.TopPerformer, NotAvailable)
}

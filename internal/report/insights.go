package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/ads-advisor/internal/domain"
	"github.com/vfg2006/ads-advisor/pkg/utils"
)

// WriteInsightReport escreve benchmarks e a lista numerada de estratégias
func WriteInsightReport(w io.Writer, r *domain.InsightReport) error {
	var b strings.Builder
	target := utils.FormatFloat(r.Target)

	b.WriteString("\nGenerating AI Insights\n")
	fmt.Fprintf(&b, "Metric: %s\n", strings.ToUpper(r.Metric))
	fmt.Fprintf(&b, "Target: %s\n", target)
	fmt.Fprintf(&b, "Context: %s\n", strings.ToUpper(r.Context))
	fmt.Fprintf(&b, "%s\n\n", utils.Rule("="))

	b.WriteString("Benchmarking:\n")
	fmt.Fprintf(&b, "  Current Benchmark: %s\n", r.Benchmarks.CurrentBenchmarkOrDefault())
	fmt.Fprintf(&b, "  Industry Average: %s\n", r.Benchmarks.IndustryAverageOrDefault())
	fmt.Fprintf(&b, "  Top Performers: %s\n", r.Benchmarks.TopPerformers())
	fmt.Fprintf(&b, "  Your Target: %s\n\n", target)

	b.WriteString("Recommended Strategies:\n")
	for i, strategy := range r.Strategies {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, strategy)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

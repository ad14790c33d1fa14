package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-advisor/internal/config"
	"github.com/vfg2006/ads-advisor/internal/domain"
	"github.com/vfg2006/ads-advisor/internal/usecases/reporting"
	"github.com/vfg2006/ads-advisor/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ads-advisor/pkg/cliErrors"
	"github.com/vfg2006/ads-advisor/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger(io.Discard)
	os.Exit(m.Run())
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(operation string, factory CommandFactory, args ...string) result {
	return runWith(Dependencies{}, operation, factory, args...)
}

func runWith(deps Dependencies, operation string, factory CommandFactory, args ...string) result {
	var stdout, stderr bytes.Buffer

	deps.Config = config.Default()
	deps.Stdout = &stdout
	deps.Now = fixedNow

	code := Execute(operation, factory(deps), args, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestAnalyzeCampaigns(t *testing.T) {
	res := run(OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand, "--account-id", "ACT_1234567890")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "\nAnalyzing campaigns for account: ACT_1234567890\nLookback period: 7 days\n"))
	assert.Contains(t, res.stdout, "Campaign Performance Summary (2024-01-09 to 2024-01-16):\n\n")
	assert.Contains(t, res.stdout, "Campaign: Retargeting_Website\n  ID: 123456789012347\n  Spend: $1200.25\n  Impressions: 45,000\n  Clicks: 1,500\n  CTR: 3.33%\n")
	assert.Contains(t, res.stdout, "  Total Spend: $7901.50\n  Total Conversions: 270\n  Overall CPA: $29.26\n")
	assert.Contains(t, res.stdout, "  Best Performer: Q1_Conversions_Mobile (ROAS: 1.33x)\n\n")
	assert.Equal(t, 5, strings.Count(res.stdout, "  • "))
	assert.Equal(t, 3, strings.Count(res.stdout, "\nCampaign: "))
}

func TestAnalyzeCampaigns_Lookback(t *testing.T) {
	res := run(OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand, "--account-id", "ACT_1", "--lookback", "30")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Lookback period: 30 days\n")
	assert.Contains(t, res.stdout, "(2023-12-17 to 2024-01-16)")
	// A janela não filtra a amostra
	assert.Contains(t, res.stdout, "  Total Conversions: 270\n")
}

func TestAnalyzeCampaigns_Idempotent(t *testing.T) {
	first := run(OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand, "--account-id", "ACT_1")
	second := run(OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand, "--account-id", "ACT_1")

	require.Equal(t, 0, first.code)
	assert.Equal(t, first.stdout, second.stdout)
}

func TestAnalyzeCampaigns_JSON(t *testing.T) {
	res := run(OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand, "--account-id", "ACT_1", "--output", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var analysis domain.CampaignAnalysis
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(res.stdout, &analysis))
	assert.Equal(t, 7901.50, analysis.Aggregate.TotalSpend)
	assert.Equal(t, 270, analysis.Aggregate.TotalConversions)
	assert.Equal(t, "Q1_Conversions_Mobile", analysis.Aggregate.BestROASCampaign)
	assert.Equal(t, "2024-01-09 to 2024-01-16", analysis.AnalysisPeriod)
	assert.Equal(t, 3, analysis.TotalCampaigns)
}

func TestAnalyzeCampaigns_WithReporter(t *testing.T) {
	t.Run("Repassa conta e janela ao analisador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockCampaignReporter(ctrl)
		reporter.EXPECT().
			Analyze(gomock.Any(), "ACT_9", 14).
			Return(&domain.CampaignAnalysis{
				AccountID:      "ACT_9",
				LookbackDays:   14,
				StartDate:      "2024-01-02",
				EndDate:        "2024-01-16",
				AnalysisPeriod: "2024-01-02 to 2024-01-16",
				Aggregate: domain.AggregateResult{
					TotalSpend:       100,
					TotalConversions: 4,
					OverallCPA:       25,
					BestROASCampaign: "Only",
					BestROAS:         2,
				},
			}, nil)

		res := runWith(Dependencies{CampaignReporter: reporter}, OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand,
			"--account-id", "ACT_9", "--lookback", "14")

		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Lookback period: 14 days\n")
		assert.Contains(t, res.stdout, "Campaign Performance Summary (2024-01-02 to 2024-01-16):\n")
		assert.Contains(t, res.stdout, "  Overall CPA: $25.00\n")
		assert.Contains(t, res.stdout, "  Best Performer: Only (ROAS: 2.00x)\n")
	})

	t.Run("Erro do analisador vira uma linha em stderr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockCampaignReporter(ctrl)
		reporter.EXPECT().
			Analyze(gomock.Any(), "ACT_9", 7).
			Return(nil, reporting.NewReportError(reporting.ErrInvalidAggregate, cliErrors.ErrInvalidAggregate, ""))

		res := runWith(Dependencies{CampaignReporter: reporter}, OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand,
			"--account-id", "ACT_9")

		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.Equal(t, "Error analyzing campaigns: no conversions recorded\n", res.stderr)
	})

	t.Run("Conta ausente não chega ao analisador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reporter := mocks.NewMockCampaignReporter(ctrl)

		res := runWith(Dependencies{CampaignReporter: reporter}, OpAnalyzeCampaigns, NewAnalyzeCampaignsCommand,
			"--lookback", "3")

		assert.Equal(t, 1, res.code)
		assert.Equal(t, "Error analyzing campaigns: required flag(s) \"account-id\" not set\n", res.stderr)
	})
}

func TestRequireFlags(t *testing.T) {
	cmd := NewOptimizeSuggestionsCommand(Dependencies{Config: config.Default(), Stdout: io.Discard})
	require.NoError(t, cmd.ParseFlags([]string{"--campaign-name", "Q1_Brand"}))

	err := requireFlags("account-id")(cmd, nil)
	require.Error(t, err)
	assert.Equal(t, cliErrors.ErrMissingRequiredData, cliErrors.CodeOf(err))
	assert.Equal(t, "required flag(s) \"account-id\" not set", err.Error())

	require.NoError(t, cmd.ParseFlags([]string{"--account-id", ""}))
	assert.NoError(t, requireFlags("account-id")(cmd, nil))
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name       string
		operation  string
		factory    CommandFactory
		args       []string
		wantStderr string
	}{
		{
			name:       "Conta obrigatória ausente",
			operation:  OpAnalyzeCampaigns,
			factory:    NewAnalyzeCampaignsCommand,
			args:       nil,
			wantStderr: "Error analyzing campaigns: required flag(s) \"account-id\" not set\n",
		},
		{
			name:       "Conta vazia",
			operation:  OpAnalyzeCampaigns,
			factory:    NewAnalyzeCampaignsCommand,
			args:       []string{"--account-id", ""},
			wantStderr: "Error analyzing campaigns: account ID is required\n",
		},
		{
			name:       "Formato de saída inválido",
			operation:  OpAnalyzeCampaigns,
			factory:    NewAnalyzeCampaignsCommand,
			args:       []string{"--account-id", "ACT_1", "--output", "xml"},
			wantStderr: "Error analyzing campaigns: invalid output format \"xml\" (expected text, json or yaml)\n",
		},
		{
			name:       "Janela antes do ano 1",
			operation:  OpAnalyzeCampaigns,
			factory:    NewAnalyzeCampaignsCommand,
			args:       []string{"--account-id", "ACT_1", "--lookback", "800000"},
			wantStderr: "Error analyzing campaigns: date value out of range\n",
		},
		{
			name:       "Janela depois do ano 9999",
			operation:  OpAnalyzeCampaigns,
			factory:    NewAnalyzeCampaignsCommand,
			args:       []string{"--account-id", "ACT_1", "--lookback", "-3000000"},
			wantStderr: "Error analyzing campaigns: date value out of range\n",
		},
		{
			name:       "Sugestões sem conta",
			operation:  OpGenerateSuggestions,
			factory:    NewOptimizeSuggestionsCommand,
			args:       []string{"--campaign-name", "Q1_Brand"},
			wantStderr: "Error generating suggestions: required flag(s) \"account-id\" not set\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(tt.operation, tt.factory, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.Empty(t, res.stdout)
			assert.Equal(t, tt.wantStderr, res.stderr)
		})
	}
}

func TestGenerateInsights_InvalidTarget(t *testing.T) {
	res := run(OpGenerateInsights, NewGenerateInsightsCommand, "--target", "abc")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.True(t, strings.HasPrefix(res.stderr, "Error generating insights: "))
	assert.Equal(t, 1, strings.Count(res.stderr, "\n"))
}

func TestGenerateInsights_Defaults(t *testing.T) {
	res := run(OpGenerateInsights, NewGenerateInsightsCommand)

	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "\nGenerating AI Insights\nMetric: ROAS\nTarget: 1.5\nContext: ECOMMERCE\n"))
	assert.Contains(t, res.stdout, "  Current Benchmark: 1.2x\n  Industry Average: 1.5x\n  Top Performers: 2.0x+\n  Your Target: 1.5\n\n")
	assert.Contains(t, res.stdout, "  5. Test seasonal messaging and urgency tactics\n")
}

func TestGenerateInsights_Lookup(t *testing.T) {
	t.Run("roas saas", func(t *testing.T) {
		res := run(OpGenerateInsights, NewGenerateInsightsCommand, "--metric", "roas", "--context", "saas", "--target", "2")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Target: 2.0\n")
		assert.Contains(t, res.stdout, "  Current Benchmark: 1.5x\n")
		assert.Contains(t, res.stdout, "  Top Performers: 3.0x+\n")
	})

	t.Run("alvo em notação científica", func(t *testing.T) {
		res := run(OpGenerateInsights, NewGenerateInsightsCommand, "--target", "1e-5")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Target: 1e-05\n")
		assert.Contains(t, res.stdout, "  Your Target: 1e-05\n")

		res = run(OpGenerateInsights, NewGenerateInsightsCommand, "--target", "1e16")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Target: 1e+16\n")
	})

	t.Run("ctr services cai no padrão", func(t *testing.T) {
		res := run(OpGenerateInsights, NewGenerateInsightsCommand, "--metric", "ctr", "--context", "services")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Metric: CTR\n")
		assert.Contains(t, res.stdout, "Context: SERVICES\n")
		assert.Contains(t, res.stdout, "  Current Benchmark: 1.2x\n")
		assert.Contains(t, res.stdout, "  1. Implement dynamic product ads showing personalized recommendations\n")
	})

	t.Run("cpa ecommerce usa top performer", func(t *testing.T) {
		res := run(OpGenerateInsights, NewGenerateInsightsCommand, "--metric", "cpa")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "  Top Performers: $10\n")
	})
}

func TestOptimizeSuggestions(t *testing.T) {
	t.Run("sem campanha", func(t *testing.T) {
		res := run(OpGenerateSuggestions, NewOptimizeSuggestionsCommand, "--account-id", "ACT_1234567890")
		require.Equal(t, 0, res.code, res.stderr)
		assert.NotContains(t, res.stdout, "Campaign:")
		for _, section := range []string{"HIGH PRIORITY ACTIONS", "CREATIVE OPTIMIZATIONS", "BIDDING STRATEGY RECOMMENDATIONS", "AUDIENCE RECOMMENDATIONS"} {
			assert.Contains(t, res.stdout, section)
		}
	})

	t.Run("com campanha", func(t *testing.T) {
		res := run(OpGenerateSuggestions, NewOptimizeSuggestionsCommand, "--account-id", "ACT_1", "--campaign-name", "Q1_Brand")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Account: ACT_1\nCampaign: Q1_Brand\n")
	})

	t.Run("yaml", func(t *testing.T) {
		res := run(OpGenerateSuggestions, NewOptimizeSuggestionsCommand, "--account-id", "ACT_1", "--output", "yaml")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "account_id: ACT_1\n")
		assert.Contains(t, res.stdout, "immediate_actions:\n")
		assert.NotContains(t, res.stdout, "campaign_name")
	})
}

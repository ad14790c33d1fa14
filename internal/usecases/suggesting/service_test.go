package suggesting

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-advisor/pkg/cliErrors"
)

func TestService_Generate(t *testing.T) {
	tests := []struct {
		name         string
		accountID    string
		campaignName string
		wantErr      bool
	}{
		{name: "Com campanha", accountID: "ACT_1234567890", campaignName: "Q1_Brand"},
		{name: "Sem campanha", accountID: "ACT_1234567890"},
		{name: "Conta vazia", accountID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewService().Generate(context.Background(), tt.accountID, tt.campaignName)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrAccountIDRequired)
				assert.Equal(t, cliErrors.ErrMissingRequiredData, cliErrors.CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.accountID, report.AccountID)
			assert.Equal(t, tt.campaignName, report.CampaignName)
			if diff := cmp.Diff(catalog, report.Suggestions); diff != "" {
				t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalog_Shape(t *testing.T) {
	set := Catalog()

	assert.Len(t, set.ImmediateActions, 3)
	assert.Len(t, set.CreativeOptimizations, 3)
	assert.Len(t, set.BiddingStrategies, 2)
	assert.Len(t, set.AudienceRecommendations, 2)

	lookalike := set.AudienceRecommendations[0]
	label, value := lookalike.SourceLine()
	assert.Equal(t, "Source", label)
	assert.Equal(t, "Website visitors (last 30 days)", value)
	assert.Equal(t, "$15-20 (vs $30 current)", lookalike.Expected())

	saved := set.AudienceRecommendations[1]
	label, value = saved.SourceLine()
	assert.Equal(t, "Definition", label)
	assert.Equal(t, "People interested in [competitor] + age 25-45", value)
	assert.Equal(t, "0.8-1.2%", saved.Expected())
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	set := Catalog()
	set.ImmediateActions[0].Priority = "LOW"

	assert.Equal(t, "HIGH", Catalog().ImmediateActions[0].Priority)
}

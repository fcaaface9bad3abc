package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

func detailFixture() *normalize.Result {
	return &normalize.Result{
		Seller: model.SellerRecord{
			ID:                 "s1",
			Platform:           "jiji",
			Name:               "X Shop",
			PulseScore:         72,
			ConfidenceLevel:    model.ConfidenceMedium,
			VerificationStatus: model.VerificationBase,
			ListingCount:       12,
		},
		Scoring: &model.ScoringResult{
			PulseScore:      72,
			ConfidenceLevel: model.ConfidenceMedium,
			TrustIndicators: map[string]string{"review_quality": "82%"},
			Recommendations: []model.Recommendation{
				{Type: model.RecommendationPositive, Message: "Strong review history"},
			},
		},
	}
}

func TestDetailTabCycling(t *testing.T) {
	m := NewDetailModel(detailFixture(), DefaultStyles())
	assert.Equal(t, 0, m.Tab())

	right := tea.KeyMsg{Type: tea.KeyRight}
	for i := 1; i < int(tabCount); i++ {
		m, _ = m.Update(right)
		assert.Equal(t, i, m.Tab())
	}

	// Wraps around in both directions
	m, _ = m.Update(right)
	assert.Equal(t, 0, m.Tab())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, int(tabCount)-1, m.Tab())
}

func TestDetailTabContent(t *testing.T) {
	m := NewDetailModel(detailFixture(), DefaultStyles())
	assert.Contains(t, m.View(), "jiji")

	m.tab = tabTrust
	assert.Contains(t, m.View(), "review_quality")

	m.tab = tabRecommendations
	assert.Contains(t, m.View(), "Strong review history")

	m.tab = tabActivity
	assert.Contains(t, m.View(), "Listings      12")

	m.tab = tabReport
	assert.Contains(t, m.View(), "72/100")
}

func TestDetailWithoutScoring(t *testing.T) {
	result := detailFixture()
	result.Scoring = nil
	m := NewDetailModel(result, DefaultStyles())

	m.tab = tabTrust
	assert.Contains(t, m.View(), "No trust breakdown")
	m.tab = tabRecommendations
	assert.Contains(t, m.View(), "No recommendations")
}

func TestDetailNilResult(t *testing.T) {
	m := NewDetailModel(nil, DefaultStyles())
	assert.Contains(t, m.View(), "No seller selected")
}

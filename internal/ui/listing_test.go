package ui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerpulse/pulse/internal/normalize"
)

func bulkList(n int) ListFunc {
	return func(ctx context.Context, limit int) ([]normalize.Result, error) {
		results := make([]normalize.Result, 0, n)
		for i := 0; i < n; i++ {
			results = append(results, record("jiji", fmt.Sprintf("s%d", i), fmt.Sprintf("seller %d", i)))
		}
		return results, nil
	}
}

func loaded(t *testing.T, m ListingModel) ListingModel {
	t.Helper()
	cmd := m.Reload()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func TestListingRevealsIncrementally(t *testing.T) {
	m := NewListingModel("Top sellers", bulkList(40), DefaultStyles())
	m = loaded(t, m)

	// One bulk fetch, first step revealed
	require.Len(t, m.results, 40)
	assert.Equal(t, listingRevealStep, m.revealed)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	assert.Equal(t, 2*listingRevealStep, m.revealed)

	// Reveal never exceeds what was fetched
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	assert.Equal(t, 40, m.revealed)
}

func TestListingStaleFetchDiscarded(t *testing.T) {
	m := NewListingModel("Top sellers", bulkList(3), DefaultStyles())

	_ = m.Reload()
	staleGen := m.gen
	_ = m.Reload()

	m, _ = m.Update(listingResultsMsg{gen: staleGen, results: []normalize.Result{record("jiji", "old", "stale")}})
	assert.Empty(t, m.results)
	assert.True(t, m.loading)

	m, _ = m.Update(listingResultsMsg{gen: m.gen, results: []normalize.Result{record("jiji", "new", "fresh")}})
	require.Len(t, m.results, 1)
	assert.Equal(t, "fresh", m.results[0].Seller.Name)
}

func TestListingSelectionWithinRevealed(t *testing.T) {
	m := NewListingModel("Top sellers", bulkList(40), DefaultStyles())
	m = loaded(t, m)

	for i := 0; i < 100; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.NotNil(t, m.Selected())
	assert.Equal(t, fmt.Sprintf("seller %d", listingRevealStep-1), m.Selected().Seller.Name)
}

func TestListingFetchError(t *testing.T) {
	fail := func(ctx context.Context, limit int) ([]normalize.Result, error) {
		return nil, fmt.Errorf("backend unreachable")
	}
	m := NewListingModel("Top sellers", fail, DefaultStyles())
	m = loaded(t, m)

	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "backend unreachable")
}

package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerpulse/pulse/internal/api"
	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

func testApp() App {
	return NewApp(AppConfig{
		Search: noopSearch,
		ListTop: func(ctx context.Context, limit int) ([]normalize.Result, error) {
			return nil, nil
		},
		Login: func(ctx context.Context, email, password string) (*model.User, error) {
			return &model.User{Email: email}, nil
		},
	})
}

func update(m tea.Model, msg tea.Msg) (App, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(App), cmd
}

func TestAppSessionExpiryForcesLogin(t *testing.T) {
	a := testApp()
	a.user = &model.User{Email: "buyer@example.com"}

	a, _ = update(a, searchResultsMsg{gen: a.search.gen, err: api.ErrSessionExpired})

	assert.Equal(t, pageLogin, a.page)
	assert.Nil(t, a.user)
	assert.Contains(t, a.View(), "session expired")
}

func TestAppLoginNavigatesBack(t *testing.T) {
	a := testApp()
	a.page = pageLogin

	a, _ = update(a, LoggedInMsg{User: &model.User{Email: "buyer@example.com"}})

	assert.Equal(t, pageSearch, a.page)
	require.NotNil(t, a.user)
	assert.Contains(t, a.View(), "buyer@example.com")
}

func TestAppOpensDetailFromSearch(t *testing.T) {
	a := testApp()
	a.search = typeQuery(a.search, "phones")
	a, _ = update(a, tea.KeyMsg{Type: tea.KeyEnter})
	a, _ = update(a, searchResultsMsg{gen: a.search.gen, query: "phones", results: []normalize.Result{
		record("jiji", "s1", "X Shop"),
	}})

	a, _ = update(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, pageDetail, a.page)
	assert.Contains(t, a.View(), "X Shop")

	a, _ = update(a, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, pageSearch, a.page)
}

func TestAppQuitKeys(t *testing.T) {
	a := testApp()

	_, cmd := update(a, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// "q" in the search input is typing, not quit
	_, cmd = update(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
}

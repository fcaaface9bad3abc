package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sellerpulse/pulse/internal/normalize"
)

// SearchFunc executes one seller search against the backend
type SearchFunc func(ctx context.Context, query string) ([]normalize.Result, error)

// searchState is the lookup flow state machine:
// idle -> searching -> {found, notFound -> idle, error -> idle}
type searchState int

const (
	stateIdle searchState = iota
	stateSearching
	stateFound
	stateNotFound
	stateError
)

// searchResultsMsg carries results keyed to the search generation that
// produced them. Results from a superseded search are discarded.
type searchResultsMsg struct {
	gen     int
	query   string
	results []normalize.Result
	err     error
}

// SearchModel is the seller search page
type SearchModel struct {
	input   textinput.Model
	styles  Styles
	search  SearchFunc
	timeout time.Duration

	state    searchState
	gen      int
	query    string
	results  []normalize.Result
	selected int
	errText  string
	width    int
}

// NewSearchModel creates the search page
func NewSearchModel(search SearchFunc, styles Styles) SearchModel {
	input := textinput.New()
	input.Placeholder = "seller name or profile URL"
	input.Focus()
	input.CharLimit = 120

	return SearchModel{
		input:   input,
		styles:  styles,
		search:  search,
		timeout: 15 * time.Second,
		width:   80,
	}
}

// Init initializes the model
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// startSearch begins a new search, superseding any in-flight one. The
// returned command resolves to a searchResultsMsg tagged with the new
// generation.
func (m *SearchModel) startSearch(query string) tea.Cmd {
	m.gen++
	m.state = stateSearching
	m.query = query
	m.selected = 0

	gen := m.gen
	search := m.search
	timeout := m.timeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		results, err := search(ctx, query)
		return searchResultsMsg{gen: gen, query: query, results: results, err: err}
	}
}

// Update handles messages
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			cmd := m.startSearch(query)
			return m, cmd
		case "up", "k":
			if m.state == stateFound && m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.state == stateFound && m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil
		}

	case searchResultsMsg:
		// Only the latest search may update visible state
		if msg.gen != m.gen {
			return m, nil
		}
		switch {
		case msg.err != nil:
			m.state = stateError
			m.errText = msg.err.Error()
			m.results = nil
		case len(msg.results) == 0:
			m.state = stateNotFound
			m.results = nil
		default:
			m.state = stateFound
			m.results = dedupe(msg.results)
			m.selected = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Selected returns the currently highlighted result, or nil
func (m SearchModel) Selected() *normalize.Result {
	if m.state != stateFound || m.selected >= len(m.results) {
		return nil
	}
	return &m.results[m.selected]
}

// Results returns the current result set
func (m SearchModel) Results() []normalize.Result {
	return m.results
}

// Searching reports whether a search is in flight
func (m SearchModel) Searching() bool {
	return m.state == stateSearching
}

// View renders the page
func (m SearchModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(" Find a seller ") + "\n\n")
	sb.WriteString(m.input.View() + "\n\n")

	switch m.state {
	case stateSearching:
		sb.WriteString(m.styles.Muted.Render("Searching for \"" + m.query + "\"..."))
	case stateNotFound:
		sb.WriteString(m.styles.Warning.Render("No sellers found for \"" + m.query + "\""))
	case stateError:
		sb.WriteString(m.styles.Error.Render("Search failed: " + m.errText))
	case stateFound:
		for i, r := range m.results {
			line := fmt.Sprintf("%-30s %-10s %3d/100", truncate(r.Seller.Name, 30), r.Seller.Platform, r.Seller.PulseScore)
			if i == m.selected {
				sb.WriteString(m.styles.Selected.Render("> "+line) + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
		}
		sb.WriteString("\n" + m.styles.Muted.Render("enter: open  up/down: select"))
	default:
		sb.WriteString(m.styles.Muted.Render("Type a seller name and press enter"))
	}

	return sb.String()
}

// dedupe drops duplicate records by platform-scoped identity, keeping the
// first occurrence
func dedupe(results []normalize.Result) []normalize.Result {
	seen := make(map[string]bool, len(results))
	out := make([]normalize.Result, 0, len(results))
	for _, r := range results {
		key := r.Seller.Key()
		if key == ":" || !seen[key] {
			seen[key] = true
			out = append(out, r)
		}
	}
	return out
}

// truncate shortens a display string to max runes. Slicing is by rune so
// multibyte seller names are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sellerpulse/pulse/internal/normalize"
)

// listingFetchLimit is the bulk fetch size. Pagination after the fetch is
// purely client-side: records are revealed in steps without further
// network calls.
const listingFetchLimit = 100

// listingRevealStep is how many more rows each "show more" reveals
const listingRevealStep = 15

// ListFunc fetches one bulk page of sellers
type ListFunc func(ctx context.Context, limit int) ([]normalize.Result, error)

// listingResultsMsg carries a bulk listing fetch keyed to its generation
type listingResultsMsg struct {
	gen     int
	results []normalize.Result
	err     error
}

// ListingModel is the ranked seller listing page
type ListingModel struct {
	styles Styles
	fetch  ListFunc
	title  string

	gen      int
	loading  bool
	results  []normalize.Result
	revealed int
	selected int
	errText  string
}

// NewListingModel creates a listing page over the given fetcher
func NewListingModel(title string, fetch ListFunc, styles Styles) ListingModel {
	return ListingModel{
		styles: styles,
		fetch:  fetch,
		title:  title,
	}
}

// Init triggers the initial bulk fetch
func (m ListingModel) Init() tea.Cmd {
	return nil
}

// Reload starts a fresh bulk fetch, superseding any in-flight one
func (m *ListingModel) Reload() tea.Cmd {
	m.gen++
	m.loading = true
	m.errText = ""

	gen := m.gen
	fetch := m.fetch

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		results, err := fetch(ctx, listingFetchLimit)
		return listingResultsMsg{gen: gen, results: results, err: err}
	}
}

// Update handles messages
func (m ListingModel) Update(msg tea.Msg) (ListingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case listingResultsMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.results = nil
			return m, nil
		}
		m.results = dedupe(msg.results)
		m.revealed = min(listingRevealStep, len(m.results))
		m.selected = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < m.revealed-1 {
				m.selected++
			}
		case "m":
			// Reveal more of the already-fetched records
			m.revealed = min(m.revealed+listingRevealStep, len(m.results))
		case "r":
			cmd := m.Reload()
			return m, cmd
		}
	}

	return m, nil
}

// Selected returns the highlighted record, or nil
func (m ListingModel) Selected() *normalize.Result {
	if m.selected >= m.revealed || m.selected >= len(m.results) {
		return nil
	}
	return &m.results[m.selected]
}

// View renders the page
func (m ListingModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(" "+m.title+" ") + "\n\n")

	switch {
	case m.loading:
		sb.WriteString(m.styles.Muted.Render("Loading..."))
	case m.errText != "":
		sb.WriteString(m.styles.Error.Render("Failed to load: " + m.errText))
	case len(m.results) == 0:
		sb.WriteString(m.styles.Muted.Render("Nothing to show yet."))
	default:
		for i := 0; i < m.revealed; i++ {
			r := m.results[i]
			score := m.styles.scoreStyle(r.Seller.PulseScore).Render(fmt.Sprintf("%3d", r.Seller.PulseScore))
			line := fmt.Sprintf("%-28s %-10s %s  %s",
				truncate(r.Seller.Name, 28), r.Seller.Platform, score, badge(r))
			if i == m.selected {
				sb.WriteString(m.styles.Selected.Render("> "+line) + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
		}
		if m.revealed < len(m.results) {
			fmt.Fprintf(&sb, "\n%s\n",
				m.styles.Muted.Render(fmt.Sprintf("showing %d of %d  (m: more)", m.revealed, len(m.results))))
		}
	}

	return sb.String()
}

func badge(r normalize.Result) string {
	switch r.Seller.VerificationStatus {
	case "id-verified":
		return "ID✓"
	case "verified":
		return "✓"
	default:
		return ""
	}
}

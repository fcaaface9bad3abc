package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
	"github.com/sellerpulse/pulse/internal/report"
)

// detailTab indexes the seller detail tabs
type detailTab int

const (
	tabOverview detailTab = iota
	tabTrust
	tabRecommendations
	tabActivity
	tabReport
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Trust Factors", "Recommendations", "Activity", "Report"}

// DetailModel is the tabbed seller detail page
type DetailModel struct {
	styles Styles
	result *normalize.Result
	tab    detailTab
	width  int
}

// NewDetailModel creates a detail page for one normalized record
func NewDetailModel(result *normalize.Result, styles Styles) DetailModel {
	return DetailModel{
		styles: styles,
		result: result,
		width:  80,
	}
}

// Init initializes the model
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// SetResult swaps in a fresh record, keeping the active tab
func (m *DetailModel) SetResult(result *normalize.Result) {
	m.result = result
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m.tab = (m.tab + 1) % tabCount
		case "left", "h", "shift+tab":
			m.tab = (m.tab + tabCount - 1) % tabCount
		}
	}
	return m, nil
}

// Tab returns the active tab index
func (m DetailModel) Tab() int {
	return int(m.tab)
}

// View renders the page
func (m DetailModel) View() string {
	if m.result == nil {
		return m.styles.Muted.Render("No seller selected.")
	}

	var sb strings.Builder
	s := m.result.Seller

	score := m.styles.scoreStyle(s.PulseScore).Render(fmt.Sprintf("%d/100", s.PulseScore))
	sb.WriteString(m.styles.Header.Render(" "+s.Name+" ") + "  " + score + "\n")
	sb.WriteString(m.renderTabs() + "\n\n")

	switch m.tab {
	case tabTrust:
		sb.WriteString(m.renderTrust())
	case tabRecommendations:
		sb.WriteString(m.renderRecommendations())
	case tabActivity:
		sb.WriteString(m.renderActivity())
	case tabReport:
		sb.WriteString(report.Text(m.result))
	default:
		sb.WriteString(m.renderOverview())
	}

	sb.WriteString("\n\n" + m.styles.Muted.Render("left/right: switch tab  esc: back"))
	return sb.String()
}

func (m DetailModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if detailTab(i) == m.tab {
			parts = append(parts, m.styles.TabActive.Render(name))
		} else {
			parts = append(parts, m.styles.Tab.Render(name))
		}
	}
	return strings.Join(parts, "")
}

func (m DetailModel) renderOverview() string {
	s := m.result.Seller
	var sb strings.Builder

	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s %s\n", m.styles.Bold.Render(fmt.Sprintf("%-14s", label)), value)
		}
	}

	row("Platform", s.Platform)
	row("Location", s.Location)
	row("Profile", s.ProfileURL)
	row("Confidence", string(s.ConfidenceLevel))
	row("Verification", string(s.VerificationStatus))
	if s.TotalReviews > 0 {
		row("Rating", fmt.Sprintf("%.1f (%d reviews)", s.AvgRating, s.TotalReviews))
	}
	if s.AccountAgeMon > 0 {
		row("Account age", fmt.Sprintf("%d months", s.AccountAgeMon))
	}
	if s.IsClaimed {
		row("Claimed", "yes")
	}
	if s.Bio != "" {
		sb.WriteString("\n" + s.Bio + "\n")
	}

	return sb.String()
}

func (m DetailModel) renderTrust() string {
	scoring := m.result.Scoring
	if scoring == nil || (len(scoring.TrustIndicators) == 0 && len(scoring.ScoringFactors) == 0) {
		return m.styles.Muted.Render("No trust breakdown available for this seller.")
	}

	var sb strings.Builder
	for _, factor := range sortedIndicatorKeys(scoring.TrustIndicators) {
		fmt.Fprintf(&sb, "%-24s %s\n", factor, scoring.TrustIndicators[factor])
	}
	if len(scoring.ScoringFactors) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		for _, factor := range sortedFactorKeys(scoring.ScoringFactors) {
			fmt.Fprintf(&sb, "%-24s %.1f\n", factor, scoring.ScoringFactors[factor])
		}
	}
	return sb.String()
}

func (m DetailModel) renderRecommendations() string {
	scoring := m.result.Scoring
	if scoring == nil || len(scoring.Recommendations) == 0 {
		return m.styles.Muted.Render("No recommendations for this seller.")
	}

	var sb strings.Builder
	for _, rec := range scoring.Recommendations {
		line := rec.Message
		if rec.Action != "" {
			line += "  (" + rec.Action + ")"
		}
		switch rec.Type {
		case model.RecommendationPositive:
			sb.WriteString(m.styles.Success.Render("+ "+line) + "\n")
		case model.RecommendationNegative:
			sb.WriteString(m.styles.Error.Render("- "+line) + "\n")
		default:
			sb.WriteString(m.styles.Warning.Render("! "+line) + "\n")
		}
	}
	return sb.String()
}

func (m DetailModel) renderActivity() string {
	s := m.result.Seller
	var sb strings.Builder

	fmt.Fprintf(&sb, "Listings      %d\n", s.ListingCount)
	fmt.Fprintf(&sb, "Endorsements  %d\n", s.EndorsementCount)
	fmt.Fprintf(&sb, "Flags         %d\n", s.FlagCount)
	if !s.FirstSeen.IsZero() {
		fmt.Fprintf(&sb, "First seen    %s\n", s.FirstSeen.Format("2006-01-02"))
	}
	if !s.LastSeen.IsZero() {
		fmt.Fprintf(&sb, "Last seen     %s\n", s.LastSeen.Format("2006-01-02"))
	}
	if !s.LastScored.IsZero() {
		fmt.Fprintf(&sb, "Last scored   %s\n", s.LastScored.Format("2006-01-02 15:04"))
	}
	return sb.String()
}

func sortedIndicatorKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFactorKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

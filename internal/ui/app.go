package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sellerpulse/pulse/internal/api"
	"github.com/sellerpulse/pulse/internal/model"
)

// page indexes the top-level views
type page int

const (
	pageSearch page = iota
	pageListing
	pageDetail
	pageLogin
)

// AppConfig wires the application to its backend operations
type AppConfig struct {
	Search  SearchFunc
	ListTop ListFunc
	Login   LoginFunc

	// User is the account from the rehydrated session, nil when signed out
	User *model.User
}

// App is the root model composing the search, listing, detail, and login
// pages
type App struct {
	styles Styles

	page     page
	lastPage page

	search  SearchModel
	listing ListingModel
	detail  DetailModel
	login   LoginModel

	user   *model.User
	width  int
	height int
}

// NewApp builds the root model
func NewApp(cfg AppConfig) App {
	styles := DefaultStyles()
	return App{
		styles:  styles,
		search:  NewSearchModel(cfg.Search, styles),
		listing: NewListingModel("Top sellers", cfg.ListTop, styles),
		detail:  NewDetailModel(nil, styles),
		login:   NewLoginModel(cfg.Login, styles),
		user:    cfg.User,
	}
}

// Init initializes the root model
func (a App) Init() tea.Cmd {
	return a.search.Init()
}

// Update handles messages
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search, _ = a.search.Update(msg)
		a.detail, _ = a.detail.Update(msg)
		return a, nil

	case LoggedInMsg:
		a.user = msg.User
		a.page = pageSearch
		return a, nil

	case tea.KeyMsg:
		if next, cmd, handled := a.handleKey(msg); handled {
			return next, cmd
		}
	}

	if expired := expiredErr(msg); expired {
		a.user = nil
		a.login.SetNotice("Your session expired, please sign in again.")
		a.page = pageLogin
		return a, a.login.Init()
	}

	return a.route(msg)
}

// handleKey intercepts navigation keys. Keys it does not claim fall
// through to the active page.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit, true
	}

	// Text inputs own most keystrokes on these pages
	typing := a.page == pageSearch || a.page == pageLogin

	switch key {
	case "q":
		if !typing {
			return a, tea.Quit, true
		}
	case "esc":
		switch a.page {
		case pageDetail:
			a.page = a.lastPage
			return a, nil, true
		case pageListing:
			a.page = pageSearch
			return a, nil, true
		case pageLogin:
			a.page = pageSearch
			return a, nil, true
		}
	case "/":
		if !typing {
			a.page = pageSearch
			return a, nil, true
		}
	case "t":
		if !typing {
			a.page = pageListing
			cmd := a.listing.Reload()
			return a, cmd, true
		}
	case "ctrl+t":
		a.page = pageListing
		cmd := a.listing.Reload()
		return a, cmd, true
	case "ctrl+l":
		if a.user == nil {
			a.page = pageLogin
			return a, a.login.Init(), true
		}
	case "enter":
		// Open the highlighted record from result pages
		switch a.page {
		case pageSearch:
			if selected := a.search.Selected(); selected != nil {
				a.lastPage = pageSearch
				a.detail.SetResult(selected)
				a.page = pageDetail
				return a, nil, true
			}
		case pageListing:
			if selected := a.listing.Selected(); selected != nil {
				a.lastPage = pageListing
				a.detail.SetResult(selected)
				a.page = pageDetail
				return a, nil, true
			}
		}
	}

	return a, nil, false
}

// route delivers a message to the active page. Result messages always
// reach their page so in-flight fetches resolve even after navigation.
func (a App) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.(type) {
	case searchResultsMsg:
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	case listingResultsMsg:
		a.listing, cmd = a.listing.Update(msg)
		return a, cmd
	case loginResultMsg:
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}

	switch a.page {
	case pageSearch:
		a.search, cmd = a.search.Update(msg)
	case pageListing:
		a.listing, cmd = a.listing.Update(msg)
	case pageDetail:
		a.detail, cmd = a.detail.Update(msg)
	case pageLogin:
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

// View renders the active page plus the status bar
func (a App) View() string {
	var body string
	switch a.page {
	case pageListing:
		body = a.listing.View()
	case pageDetail:
		body = a.detail.View()
	case pageLogin:
		body = a.login.View()
	default:
		body = a.search.View()
	}

	status := "signed out  (ctrl+l: sign in)"
	if a.user != nil {
		status = a.user.Email
	}
	bar := a.styles.Muted.Render("/ search  ctrl+t top sellers  ctrl+c quit  |  " + status)

	return body + "\n\n" + bar
}

// expiredErr reports whether a page result message failed with an
// expired session
func expiredErr(msg tea.Msg) bool {
	var err error
	switch msg := msg.(type) {
	case searchResultsMsg:
		err = msg.err
	case listingResultsMsg:
		err = msg.err
	default:
		return false
	}
	return errors.Is(err, api.ErrSessionExpired)
}

// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/rentflow/internal/app/navctl"
	"github.com/llehouerou/rentflow/internal/app/popupctl"
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/logging"
	"github.com/llehouerou/rentflow/internal/state"
)

// DefaultRequestTimeout bounds a single backend call when Deps leaves it unset.
const DefaultRequestTimeout = 30 * time.Second

// Deps are the collaborators of the dashboard.
type Deps struct {
	Backend        Backend
	State          state.Interface
	Script         *demo.Script
	RequestTimeout time.Duration
}

// thread is the message pane of the conversations view.
type thread struct {
	conversation crm.Conversation
	messages     []crm.Message
	open         bool
	loading      bool
	err          error
	scroll       int
}

// dashboard holds the figures of the dashboard view.
type dashboard struct {
	stats        *crm.DashboardStats
	distribution crm.ScoreDistribution
	recent       []crm.Lead
	loaded       bool
	err          error
}

// Model is the root application model containing all state.
type Model struct {
	Navigation *navctl.Manager
	Popups     *popupctl.Manager

	backend Backend
	state   state.Interface
	script  *demo.Script
	timeout time.Duration
	keys    *keymap.Resolver
	logger  zerolog.Logger
	now     func() time.Time

	dashboard       dashboard
	leads           table[crm.Lead]
	leadFilters     crm.LeadFilters
	properties      table[crm.Property]
	propertyFilters crm.PropertyFilters
	conversations   table[crm.Conversation]
	reviews         table[crm.Review]
	thread          thread

	status    string
	statusSeq int
	width     int
	height    int
}

// New creates the application model and restores the last visited view.
func New(deps Deps) Model {
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	m := Model{
		Navigation:    navctl.New(),
		Popups:        popupctl.New(),
		backend:       deps.Backend,
		state:         deps.State,
		script:        deps.Script,
		timeout:       timeout,
		keys:          keymap.NewResolver(keymap.ExceptContext("demo")),
		logger:        logging.Component("app"),
		now:           time.Now,
		leads:         newTable(crm.FilterLeads),
		properties:    newTable(crm.FilterProperties),
		conversations: newTable(crm.FilterConversations),
		reviews:       newTable(crm.FilterReviews),
	}
	m.restoreNavigation()
	m.applyFocus()
	return m
}

// Init implements tea.Model. It loads the restored view and the dashboard
// figures used by the header badge.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadDashboard()}
	if m.Navigation.ViewMode() != navctl.ViewDashboard {
		cmds = append(cmds, m.loadView(m.Navigation.ViewMode()))
	}
	return tea.Batch(cmds...)
}

// setStatus shows a transient message in the status line.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	return StatusTimeoutCmd(m.statusSeq)
}

// applyFocus propagates the navigation focus to the tables.
func (m *Model) applyFocus() {
	listFocused := m.Navigation.Focus() == navctl.FocusList
	m.leads.list.SetFocused(listFocused)
	m.properties.list.SetFocused(listFocused)
	m.conversations.list.SetFocused(listFocused)
	m.reviews.list.SetFocused(listFocused)
}

// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/logging"
	"github.com/llehouerou/rentflow/internal/ui/confirm"
	"github.com/llehouerou/rentflow/internal/ui/demomodal"
	"github.com/llehouerou/rentflow/internal/ui/form"
	"github.com/llehouerou/rentflow/internal/ui/helpbindings"
	"github.com/llehouerou/rentflow/internal/ui/overlay"
	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/styles"
	"github.com/llehouerou/rentflow/internal/ui/textinput"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups    map[Type]popup.Popup
	sizes     map[Type]popup.SizeConfig
	inputMode InputMode
	errorMsg  string
	width     int
	height    int
	logger    zerolog.Logger
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Demo: popup.SizeLarge,
			// All others default to SizeAuto
		},
		logger: logging.Component("popups"),
	}
}

// SetSize updates the dimensions for popup rendering and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case TextInput:
		return p.inputMode != InputNone && p.popups[t] != nil
	case Help, Confirm, Form, Demo:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type, replacing any previous one.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	p.Hide(t)
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type, releasing what it holds.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Error:
		p.errorMsg = ""
	case TextInput, Help, Confirm, Form, Demo:
		if t == TextInput {
			p.inputMode = InputNone
		}
		if c, ok := p.popups[t].(popup.Closer); ok {
			if err := c.Close(); err != nil {
				p.logger.Warn().Err(err).Int("popup", int(t)).Msg("close popup")
			}
		}
		delete(p.popups, t)
	}
}

// HideActive hides the highest-priority visible popup.
func (p *Manager) HideActive() {
	p.Hide(p.ActivePopup())
}

// Close hides every popup. Called when the program exits.
func (p *Manager) Close() {
	for _, t := range RenderOrder {
		p.Hide(t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize returns the content area a popup of the given size gets.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return popup.InnerSize(popup.Dimensions("", p.width, p.height, size))
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowTextInput displays a text input popup.
func (p *Manager) ShowTextInput(mode InputMode, title, value string, suggestions []string, context any) tea.Cmd {
	ti := textinput.New()
	focus := ti.Start(title, value, suggestions, context, p.width, p.height)
	cmd := p.Show(TextInput, &ti)
	p.inputMode = mode
	return tea.Batch(cmd, focus)
}

// ShowConfirm asks a yes/no question; the answer arrives as confirm.Result.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowForm opens a step-by-step form; the answers arrive as form.Result.
func (p *Manager) ShowForm(title string, fields []form.Field, context any) tea.Cmd {
	return p.Show(Form, form.New(title, fields, context))
}

// ShowDemo opens the walkthrough with a fresh player.
func (p *Manager) ShowDemo(script *demo.Script) tea.Cmd {
	return p.Show(Demo, demomodal.New(script))
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// --- Accessors ---

// InputMode returns the current input mode.
func (p *Manager) InputMode() InputMode {
	return p.inputMode
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// Demo returns the walkthrough popup, or nil when it is closed.
func (p *Manager) Demo() *demomodal.Model {
	if d, ok := p.popups[Demo].(*demomodal.Model); ok {
		return d
	}
	return nil
}

// --- Message Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	active := p.ActivePopup()
	if active == None {
		return false, nil
	}
	return true, p.Update(active, msg)
}

// Update forwards msg to the popup of type t if it is open.
func (p *Manager) Update(t Type, msg tea.Msg) tea.Cmd {
	pop := p.popups[t]
	if pop == nil {
		return nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[t] = updated
	return cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		if t == Error {
			base = overlay.Compose(base, p.renderError(), p.width)
			continue
		}

		rendered := popup.RenderBordered(p.popups[t].View(), p.width, p.height, p.sizes[t])
		base = overlay.Compose(base, rendered, p.width)
	}
	return base
}

func (p *Manager) renderError() string {
	pop := popup.New()
	pop.Title = "Error"
	pop.Content = p.errorMsg
	pop.Footer = "Press any key to dismiss"
	pop.Style.BorderColor = styles.T().Error
	return pop.Render(p.width, p.height)
}

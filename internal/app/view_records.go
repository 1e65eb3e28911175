// internal/app/view_records.go
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/app/navctl"
	"github.com/llehouerou/rentflow/internal/crm"
	"github.com/llehouerou/rentflow/internal/errmsg"
	"github.com/llehouerou/rentflow/internal/ui/layout"
	"github.com/llehouerou/rentflow/internal/ui/render"
	"github.com/llehouerou/rentflow/internal/ui/styles"
)

var (
	leadColumns = []render.Column{
		{Title: "Name", Width: 20},
		{Title: "Phone", Width: 14},
		{Title: "Score", Width: 5, Right: true},
		{Title: "Tier", Width: 5},
		{Title: "Status", Width: 10},
		{Title: "Location", Width: 14},
		{Title: "Budget", Width: 19},
		{Title: "Added", Width: 14},
	}
	propertyColumns = []render.Column{
		{Title: "Title", Width: 28},
		{Title: "Type", Width: 10},
		{Title: "Location", Width: 16},
		{Title: "Rent", Width: 10, Right: true},
		{Title: "Beds", Width: 4, Right: true},
		{Title: "Sqft", Width: 6, Right: true},
		{Title: "Status", Width: 11},
	}
	conversationColumns = []render.Column{
		{Title: "Lead", Width: 18},
		{Title: "Phone", Width: 14},
		{Title: "Last message", Width: 30},
		{Title: "When", Width: 10},
		{Title: "Unread", Width: 6, Right: true},
		{Title: "Status", Width: 8},
	}
	reviewColumns = []render.Column{
		{Title: "Score", Width: 5, Right: true},
		{Title: "Tenant message", Width: 32},
		{Title: "Flags", Width: 20},
		{Title: "Received", Width: 10},
	}
)

// emptyText is shown by a table without rows. filters describes the
// server-side filters of the page, if any.
func emptyText[T any](t table[T], op errmsg.Op, noun, filters string) string {
	switch {
	case !t.loaded:
		return "Loading " + noun + "..."
	case t.err != nil:
		return errmsg.Format(op, t.err)
	case t.query != "":
		return fmt.Sprintf("No %s match %q", noun, t.query)
	case filters != "":
		return fmt.Sprintf("No %s with %s", noun, filters)
	}
	return "No " + noun
}

func (m Model) renderLeads() string {
	now := m.now()
	return m.leads.list.Render(leadColumns, func(l crm.Lead) []string {
		return []string{
			l.Name,
			l.Phone,
			strconv.Itoa(l.Score),
			l.Tier().String(),
			string(l.Status),
			l.LocationPreference,
			budget(l.BudgetMin, l.BudgetMax),
			crm.FormatRelative(l.CreatedAt, now),
		}
	}, emptyText(m.leads, errmsg.OpLeadsLoad, "leads", m.leadFilters.Label()))
}

func budget(lo, hi int) string {
	switch {
	case lo > 0 && hi > 0:
		return crm.FormatCurrency(lo) + "-" + crm.FormatCurrency(hi)
	case hi > 0:
		return "up to " + crm.FormatCurrency(hi)
	case lo > 0:
		return "from " + crm.FormatCurrency(lo)
	}
	return ""
}

func (m Model) renderProperties() string {
	return m.properties.list.Render(propertyColumns, func(p crm.Property) []string {
		return []string{
			p.Title,
			string(p.Type),
			p.Location,
			crm.FormatCurrency(p.Rent),
			strconv.Itoa(p.Bedrooms),
			strconv.Itoa(p.AreaSqft),
			string(p.Availability),
		}
	}, emptyText(m.properties, errmsg.OpPropertiesLoad, "properties", m.propertyFilters.Label()))
}

func (m Model) renderConversations() string {
	now := m.now()
	tbl := m.conversations.list.Render(conversationColumns, func(c crm.Conversation) []string {
		unread := ""
		if c.UnreadCount > 0 {
			unread = strconv.Itoa(c.UnreadCount)
		}
		return []string{
			c.LeadName,
			c.LeadPhone,
			c.LastMessage,
			crm.FormatRelative(c.LastMessageTime, now),
			unread,
			string(c.Status),
		}
	}, emptyText(m.conversations, errmsg.OpConversationsLoad, "conversations", ""))

	if !m.thread.open {
		return tbl
	}
	return m.split(tbl, m.renderThread, m.contentHeight())
}

// split places a detail pane next to the table, or under it in narrow mode.
func (m Model) split(tbl string, pane func(width, height int) string, height int) string {
	narrow := layout.IsNarrowMode(m.width)
	w := layout.PaneWidth(m.width, narrow, true)
	h := layout.PaneHeight(height, narrow, true)
	if narrow {
		return lipgloss.JoinVertical(lipgloss.Left, tbl, pane(w, h))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tbl, pane(w, h))
}

// paneSize returns the area inside a bordered pane of the given outer size.
func paneSize(width, height int) (int, int) {
	return max(width-2, 0), max(height-2, 0)
}

// threadBodyHeight is the number of message lines the pane shows under its
// two header lines.
func threadBodyHeight(innerHeight int) int {
	return max(innerHeight-2, 1)
}

// threadPaneSize is the outer size of the message pane for the window.
func (m Model) threadPaneSize() (int, int) {
	narrow := layout.IsNarrowMode(m.width)
	return layout.PaneWidth(m.width, narrow, true), layout.PaneHeight(m.contentHeight(), narrow, true)
}

func (m Model) threadMaxScroll() int {
	w, h := paneSize(m.threadPaneSize())
	return max(len(m.threadLines(w))-threadBodyHeight(h), 0)
}

// threadLines renders the messages of the open conversation, oldest first.
func (m Model) threadLines(width int) []string {
	s := styles.T().S()
	now := m.now()

	var lines []string
	for _, msg := range m.thread.messages {
		lines = append(lines, senderLabel(msg.Sender)+" "+s.Subtle.Render(crm.FormatRelative(msg.Timestamp, now)))
		for _, l := range render.Wrap(msg.Content, max(width-2, 1)) {
			lines = append(lines, "  "+l)
		}
		if ctx := msg.AIContext; ctx != nil && ctx.Intent != "" {
			lines = append(lines, "  "+s.Subtle.Render(render.Truncate(
				fmt.Sprintf("intent %s · %s · %.0f%% confident", ctx.Intent, ctx.Sentiment, ctx.Confidence*100),
				max(width-2, 1),
			)))
		}
		lines = append(lines, "")
	}
	return lines
}

func senderLabel(sender crm.Sender) string {
	s := styles.T().S()
	switch sender {
	case crm.SenderTenant:
		return s.Title.Render("Tenant")
	case crm.SenderAI:
		return s.Active.Render("AI")
	case crm.SenderBroker:
		return s.Success.Render("Broker")
	}
	return s.Muted.Render(string(sender))
}

func (m Model) renderThread(width, height int) string {
	s := styles.T().S()
	innerW, innerH := paneSize(width, height)
	c := m.thread.conversation

	lines := []string{
		s.Title.Render(render.Truncate(c.LeadName, innerW)),
		s.Muted.Render(render.Truncate(c.LeadPhone+" · "+string(c.Status), innerW)),
	}

	body := threadBodyHeight(innerH)
	switch {
	case m.thread.loading:
		lines = append(lines, s.Muted.Render("Loading messages..."))
	case m.thread.err != nil:
		lines = append(lines, s.Error.Render(render.Truncate(errmsg.Format(errmsg.OpMessagesLoad, m.thread.err), innerW)))
	case len(m.thread.messages) == 0:
		lines = append(lines, s.Muted.Render("No messages"))
	default:
		all := m.threadLines(innerW)
		scroll := min(m.thread.scroll, max(len(all)-body, 0))
		end := len(all) - scroll
		start := max(end-body, 0)
		lines = append(lines, all[start:end]...)
	}

	return styles.PanelStyle(m.Navigation.Focus() == navctl.FocusPane).
		Width(innerW).
		Height(innerH).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderReviews() string {
	tbl := m.reviews.list.Render(reviewColumns, func(r crm.Review) []string {
		return []string{
			strconv.Itoa(r.ComplexityScore),
			r.TenantMessage,
			strings.Join(r.FlaggedReasons, ", "),
			crm.FormatRelative(r.CreatedAt, m.now()),
		}
	}, emptyText(m.reviews, errmsg.OpReviewsLoad, string(m.Navigation.ReviewStatus())+" reviews", ""))

	return m.renderReviewTabs() + "\n" + m.split(tbl, m.renderReviewDetail, max(m.contentHeight()-1, 0))
}

func (m Model) renderReviewTabs() string {
	s := styles.T().S()
	current := m.Navigation.ReviewStatus()
	parts := make([]string, len(crm.ReviewStatuses))
	for i, status := range crm.ReviewStatuses {
		label := strings.ToUpper(string(status[:1])) + string(status[1:])
		if status == current {
			parts[i] = s.Active.Render("[" + label + "]")
		} else {
			parts[i] = s.Muted.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderReviewDetail(width, height int) string {
	s := styles.T().S()
	innerW, innerH := paneSize(width, height)

	var lines []string
	r, ok := m.reviews.list.Selected()
	if !ok {
		lines = []string{s.Muted.Render("No review selected")}
	} else {
		lines = append(lines, s.Title.Render("Tenant"))
		lines = append(lines, render.Wrap(r.TenantMessage, innerW)...)
		lines = append(lines, "", s.Active.Render("AI response"))
		lines = append(lines, render.Wrap(r.AIResponse, innerW)...)
		lines = append(lines, "", s.Muted.Render(fmt.Sprintf("Complexity %d/100", r.ComplexityScore)))
		if len(r.FlaggedReasons) > 0 {
			lines = append(lines, render.Wrap("Flagged: "+strings.Join(r.FlaggedReasons, ", "), innerW)...)
		}
		if r.BrokerNotes != "" {
			lines = append(lines, "", s.Muted.Render("Notes"))
			lines = append(lines, render.Wrap(r.BrokerNotes, innerW)...)
		}
		if r.Status == crm.ReviewPending {
			lines = append(lines, "", s.Subtle.Render(render.Truncate("a approve · e edit · x reject", innerW)))
		}
	}

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return styles.PanelStyle(false).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

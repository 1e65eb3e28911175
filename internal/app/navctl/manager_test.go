package navctl

import (
	"testing"

	"github.com/llehouerou/rentflow/internal/crm"
)

func TestNew_StartsOnDashboard(t *testing.T) {
	n := New()
	if n.ViewMode() != ViewDashboard {
		t.Errorf("ViewMode = %q, want dashboard", n.ViewMode())
	}
	if n.ReviewStatus() != crm.ReviewPending {
		t.Errorf("ReviewStatus = %q, want pending", n.ReviewStatus())
	}
}

func TestSetViewMode(t *testing.T) {
	n := New()
	if !n.SetViewMode(ViewLeads) {
		t.Error("SetViewMode(leads) should report a change")
	}
	if n.SetViewMode(ViewLeads) {
		t.Error("SetViewMode to the current view should report no change")
	}
	if n.SetViewMode("library") {
		t.Error("unknown view should be ignored")
	}
	if n.ViewMode() != ViewLeads {
		t.Errorf("ViewMode = %q, want leads", n.ViewMode())
	}
}

func TestNextPrevView_Wrap(t *testing.T) {
	n := New()
	n.PrevView()
	if n.ViewMode() != ViewReviews {
		t.Errorf("PrevView from dashboard = %q, want reviews", n.ViewMode())
	}
	n.NextView()
	if n.ViewMode() != ViewDashboard {
		t.Errorf("NextView from reviews = %q, want dashboard", n.ViewMode())
	}
	for range Views {
		n.NextView()
	}
	if n.ViewMode() != ViewDashboard {
		t.Errorf("full cycle = %q, want dashboard", n.ViewMode())
	}
}

func TestFocus_PaneOnlyInConversations(t *testing.T) {
	n := New()
	n.SetFocus(FocusPane)
	if n.Focus() != FocusList {
		t.Error("pane focus should be refused outside conversations")
	}

	n.SetViewMode(ViewConversations)
	n.SetFocus(FocusPane)
	if n.Focus() != FocusPane {
		t.Error("pane focus should be accepted in conversations")
	}

	n.SetViewMode(ViewLeads)
	if n.Focus() != FocusList {
		t.Error("changing view should reset focus to the list")
	}
}

func TestReviewTabs(t *testing.T) {
	n := New()
	n.PrevReviewTab()
	if n.ReviewStatus() != crm.ReviewRejected {
		t.Errorf("PrevReviewTab from pending = %q, want rejected", n.ReviewStatus())
	}
	n.NextReviewTab()
	n.NextReviewTab()
	if n.ReviewStatus() != crm.ReviewApproved {
		t.Errorf("ReviewStatus = %q, want approved", n.ReviewStatus())
	}

	n.SetReviewStatus(crm.ReviewEdited)
	if n.ReviewStatus() != crm.ReviewEdited {
		t.Errorf("ReviewStatus = %q, want edited", n.ReviewStatus())
	}
	n.SetReviewStatus("bogus")
	if n.ReviewStatus() != crm.ReviewEdited {
		t.Error("unknown status should be ignored")
	}
}

func TestViewModeHelpers(t *testing.T) {
	if ViewDashboard.SupportsSearch() {
		t.Error("dashboard has no table to search")
	}
	if !ViewReviews.SupportsSearch() {
		t.Error("reviews should support search")
	}
	if ViewConversations.Title() != "Conversations" {
		t.Errorf("Title = %q", ViewConversations.Title())
	}
}

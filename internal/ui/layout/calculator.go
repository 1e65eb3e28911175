// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the message pane of the
// conversations view is stacked under the list instead of beside it.
const NarrowThreshold = 100

// MinCardWidth is the narrowest a dashboard stat card may get.
const MinCardWidth = 22

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int
	SearchHeight int // 0 when no search bar is shown
}

// ContentHeight calculates the available height for the active view: the
// terminal height minus header, search bar and status line.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.SearchHeight
	return max(height, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// ListWidth is the width of a record table. With the message pane open in
// wide mode the table takes 2/5 of the width.
func ListWidth(windowWidth int, narrowMode, paneOpen bool) int {
	if paneOpen && !narrowMode {
		return windowWidth * 2 / 5
	}
	return windowWidth
}

// PaneWidth is the width of the message pane.
func PaneWidth(windowWidth int, narrowMode, paneOpen bool) int {
	if narrowMode {
		return windowWidth
	}
	return windowWidth - ListWidth(windowWidth, narrowMode, paneOpen)
}

// ListHeight is the height of a record table. In narrow mode with the pane
// open the table keeps 1/3 of the content height.
func ListHeight(contentHeight int, narrowMode, paneOpen bool) int {
	if narrowMode && paneOpen {
		return contentHeight / 3
	}
	return contentHeight
}

// PaneHeight is the height of the message pane.
func PaneHeight(contentHeight int, narrowMode, paneOpen bool) int {
	if narrowMode {
		return contentHeight - ListHeight(contentHeight, narrowMode, paneOpen)
	}
	return contentHeight
}

// CardsPerRow returns how many stat cards of at least MinCardWidth fit
// side by side, between 1 and count.
func CardsPerRow(windowWidth, count int) int {
	if count <= 0 {
		return 0
	}
	return min(max(windowWidth/MinCardWidth, 1), count)
}

// CardWidth splits windowWidth evenly between perRow cards.
func CardWidth(windowWidth, perRow int) int {
	if perRow <= 0 {
		return windowWidth
	}
	return windowWidth / perRow
}

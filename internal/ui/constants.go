// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows to keep visible above/below the cursor.
	ScrollMargin = 2

	// HeaderHeight is the tab bar plus the blank line under it.
	HeaderHeight = 2

	// StatusHeight is the status line at the bottom of the screen.
	StatusHeight = 1

	// TableOverhead is the vertical space a table spends outside its rows:
	// border, column header and separator.
	TableOverhead = 4

	// MinWidth is the narrowest terminal the dashboard lays out for.
	MinWidth = 40
)

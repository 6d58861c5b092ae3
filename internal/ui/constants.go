// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the default number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// HeaderHeight is the title line above the panels.
	HeaderHeight = 1

	// FooterHeight is the status/help line below the panels.
	FooterHeight = 1

	// MinListWidth is the narrowest list panel worth drawing.
	MinListWidth = 12
)

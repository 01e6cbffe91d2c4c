package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Input grid and button column shape
const (
	InputGridColumns = 2
	ButtonRows       = 3
)

// Table column widths, indexed like movies.Column*
var ColumnWidths = []float32{260, 80, 80}

// Rating slider step
const RatingStep = 1

// Text fragments
const (
	RatingLabelFormat = "%d"
	YearPlaceholder   = "1900"
)

// NoSelection marks an empty table selection
const NoSelection = -1

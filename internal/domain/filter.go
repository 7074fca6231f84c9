package domain

// DateRange bounds the structured filter on Opened, inclusive of both days.
// Bounds are "yyyy-MM-dd" strings as supplied by the caller; an empty bound
// leaves that side unlimited.
type DateRange struct {
	Start string
	End   string
}

// FilterCriteria is owned by the caller and consumed by value on every
// evaluation. A non-empty SearchQuery switches the engine to search mode and
// the structured fields are ignored entirely.
type FilterCriteria struct {
	SearchQuery string
	Category    string
	Status      string
	DateRange   DateRange
}

package models

// TypeCount is the number of facilities of one type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Stats aggregates facility counts per type, optionally within one area.
// Area is nil when no area filter was requested.
type Stats struct {
	Area   *string     `json:"area"`
	Total  int         `json:"total"`
	ByType []TypeCount `json:"byType"`
}

// AreaRef identifies a committee area.
type AreaRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Missing lists the areas without any facility of a type.
type Missing struct {
	Type      string    `json:"type"`
	MissingIn []AreaRef `json:"missingIn"`
}

// AreaCount is the number of facilities of a type within one area.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// Distribution spreads a facility type over all areas, lowest count first.
type Distribution struct {
	Type         string      `json:"type"`
	Distribution []AreaCount `json:"distribution"`
	LowestAccess []AreaCount `json:"lowestAccess"`
}

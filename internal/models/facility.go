package models

// Area is a committee area, the administrative unit facilities are grouped by.
type Area struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URI           string `json:"uri"`
	FacilityCount int    `json:"facilityCount"`
}

// FacilityType classifies facilities (park, library, toilet...).
type FacilityType struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URI           string `json:"uri"`
	FacilityCount int    `json:"facilityCount"`
}

// Facility is a single facility as listed on the map.
// WKT is empty when the facility has no geometry in the graph.
type Facility struct {
	URI         string
	Name        string
	Address     string
	Area        string
	Type        string
	Coordinates Coordinates
	WKT         string
}

// FacilityDetail is the full record of one facility.
type FacilityDetail struct {
	URI           string      `json:"uri"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	Area          string      `json:"area"`
	Coordinates   Coordinates `json:"coordinates"`
	Address       string      `json:"address"`
	URL           string      `json:"url"`
	SourceDataset string      `json:"sourceDataset"`
}

// SearchResult is a facility matched by name.
type SearchResult struct {
	URI         string      `json:"uri"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Area        string      `json:"area"`
	Coordinates Coordinates `json:"coordinates"`
}

// SearchResults is the response of a name search.
type SearchResults struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

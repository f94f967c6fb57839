package dto

// LocaleResponse is the process-wide locale.
type LocaleResponse struct {
	Locale    string   `json:"locale"`
	Label     string   `json:"label"`
	Supported []string `json:"supported"`
	// Suggested is the best match for the client's Accept-Language header.
	Suggested string `json:"suggested,omitempty"`
}

// AboutResponse is the localized About page.
type AboutResponse struct {
	Locale        string   `json:"locale"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Description   string   `json:"description"`
	FeaturesTitle string   `json:"features_title"`
	Features      []string `json:"features"`
	MissionTitle  string   `json:"mission_title"`
	MissionText   string   `json:"mission_text"`
}

// HealthResponse reports process and score store health.
type HealthResponse struct {
	Status     string `json:"status"`
	ScoreStore string `json:"score_store"`
}

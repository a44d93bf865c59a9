package models

// Settings holds local client preferences. Everything else lives
// server-side; this is only what the client needs before it has a session.
type Settings struct {
	Theme         string `json:"theme"`          // "light" or "dark"
	APIBaseURL    string `json:"api_base_url"`   // habit service base, e.g. http://localhost:8000/api/v1
	AnalyticsDays int    `json:"analytics_days"` // default trailing window for analytics queries
	DateFormat    string `json:"date_format"`    // Go reference layout for rendering dates
}

package models

import "encoding/json"

// College is one entry of the static college dataset. Entries produced by
// the AI service follow the same schema but are passed through as raw JSON.
type College struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Ranking      string   `json:"ranking"`
	Programs     []string `json:"programs"`
	Description  string   `json:"description"`
	Website      string   `json:"website"`
	Rating       float64  `json:"rating"`
	StudentCount string   `json:"student_count"`
	Established  string   `json:"established"`
	Fees         string   `json:"fees"`
}

// CollegeSearchRequest is the JSON body for POST /api/colleges/search.
type CollegeSearchRequest struct {
	Field    string `json:"field"`
	Location string `json:"location"`
}

// CollegeSearchResponse is returned by POST /api/colleges/search. Note is
// only set when the static dataset was served.
type CollegeSearchResponse struct {
	Status string            `json:"status"`
	Count  int               `json:"count"`
	Data   []json.RawMessage `json:"data"`
	Note   string            `json:"note,omitempty"`
}

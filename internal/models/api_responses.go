package models

// AskResponse contains the answer to a chat question.
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Outcome  string `json:"outcome"`
	EntryID  string `json:"entry_id,omitempty"`
}

// PlanResponse contains a generated study plan.
// Lines is empty when no difficulties were informed.
type PlanResponse struct {
	Text        string          `json:"text"`
	HoursPerDay float64         `json:"hours_per_day"`
	Days        int             `json:"days"`
	Lines       []StudyPlanLine `json:"lines"`
}

// RulesResponse contains the school rules.
type RulesResponse struct {
	Text  string      `json:"text"`
	Rules SchoolRules `json:"rules"`
}

// DatesResponse contains the important school dates.
type DatesResponse struct {
	Text  string      `json:"text"`
	Dates SchoolDates `json:"dates"`
}

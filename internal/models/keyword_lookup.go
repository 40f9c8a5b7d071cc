package models

import "time"

// Keyword lookup outcome constants
const (
	OutcomeMatched       = "matched"
	OutcomeStudyTip      = "study_tip"
	OutcomeNotUnderstood = "not_understood"
	OutcomeEmpty         = "empty"
)

// KeywordLookup represents a per-answer hit count by outcome.
// Keyword is the ID of the matched answer entry, or "-" for fallbacks.
// The raw question is never stored.
type KeywordLookup struct {
	Keyword    string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}

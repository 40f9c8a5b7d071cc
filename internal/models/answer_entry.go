package models

// AnswerEntry is one canned response and the trigger phrases that select it.
// Entries are checked in declaration order and the first match wins.
type AnswerEntry struct {
	ID   string
	Keys []string
	Text string
}

// HasKeys reports whether the entry can ever match.
func (e AnswerEntry) HasKeys() bool {
	for _, k := range e.Keys {
		if k != "" {
			return true
		}
	}
	return false
}

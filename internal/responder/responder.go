// Package responder answers free-text questions from a fixed table of canned responses.
package responder

import (
	"strings"

	"schoolwidget/internal/models"
	"schoolwidget/internal/validation"
)

// Fixed replies that do not come from the answer table.
const (
	EmptyMessage    = "🤔 Pergunta vazia. Escreve algo aí."
	StudyTipMessage = "🔎 Dica rápida: quebre o conteúdo em partes, faça foco 25 min (pomodoro), revise com flashcards e resolva exercícios."
	FallbackMessage = "🤔 Não entendi. Pergunta tipo: 'Pomodoro', 'Como estudar funções?', 'Quando é a feira?'"
)

// NoEntry is the keyword label used for outcomes that did not hit a table entry.
const NoEntry = "-"

// Result describes how a question was answered.
type Result struct {
	Text    string
	Outcome string
	EntryID string
}

type compiledEntry struct {
	id   string
	keys []string
	text string
}

// Responder matches normalized questions against an ordered answer table.
// It is immutable after construction and safe for concurrent use.
type Responder struct {
	entries []compiledEntry
}

// New builds a Responder over entries. Trigger phrases are normalized once here;
// entry and key order is kept as given. Entries left without a usable key are dropped.
func New(entries []models.AnswerEntry) *Responder {
	compiled := make([]compiledEntry, 0, len(entries))
	for _, e := range entries {
		if !e.HasKeys() {
			continue
		}
		ce := compiledEntry{id: e.ID, text: e.Text}
		for _, k := range e.Keys {
			nk := validation.Normalize(k)
			// An empty key would match every question.
			if nk == "" {
				continue
			}
			ce.keys = append(ce.keys, nk)
		}
		if len(ce.keys) > 0 {
			compiled = append(compiled, ce)
		}
	}
	return &Responder{entries: compiled}
}

// Answer returns exactly one reply for query.
func (r *Responder) Answer(query string) string {
	return r.Lookup(query).Text
}

// Lookup answers query and reports which rule produced the reply.
//
// Keys are plain substrings of the normalized query, so a short key can fire
// inside an unrelated longer word ("cel" in "excelente"). A nil Responder
// behaves like an empty table.
func (r *Responder) Lookup(query string) Result {
	if validation.IsBlank(query) {
		return Result{Text: EmptyMessage, Outcome: models.OutcomeEmpty, EntryID: NoEntry}
	}

	var entries []compiledEntry
	if r != nil {
		entries = r.entries
	}

	q := validation.Normalize(query)
	for _, e := range entries {
		for _, k := range e.keys {
			if strings.Contains(q, k) {
				return Result{Text: e.text, Outcome: models.OutcomeMatched, EntryID: e.id}
			}
		}
	}

	if strings.Contains(q, "como") && strings.Contains(q, "estudar") {
		return Result{Text: StudyTipMessage, Outcome: models.OutcomeStudyTip, EntryID: NoEntry}
	}
	return Result{Text: FallbackMessage, Outcome: models.OutcomeNotUnderstood, EntryID: NoEntry}
}

// Package widget dispatches the school widget's modes to their handlers.
package widget

import (
	"fmt"
	"strings"

	"schoolwidget/internal/models"
	"schoolwidget/internal/planner"
	"schoolwidget/internal/responder"
	"schoolwidget/internal/validation"
)

// Fixed messages shown outside of any mode.
const (
	Greeting     = "Escolha um modo e clique em Rodar. 😉"
	ResetMessage = "Limpo. 🚿"
)

// DefaultChips are the example questions offered under the question field.
var DefaultChips = []string{
	"Pomodoro",
	"Mapa mental",
	"Como estudar funções?",
	"Quando é a feira?",
	"Regra de celular",
}

// Observer receives usage events. Implementations must not block.
type Observer interface {
	ObserveRun(mode string)
	RecordLookup(keyword, outcome string)
}

type handlerFunc func(Form) string

// Widget holds the immutable answer table and school info and maps each Mode
// to its handler. It is safe for concurrent use.
type Widget struct {
	responder *responder.Responder
	school    models.SchoolInfo
	observer  Observer
	chips     []string
	handlers  map[Mode]handlerFunc
}

// Option configures a Widget.
type Option func(*Widget)

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(w *Widget) { w.observer = o }
}

// WithChips replaces the example chips.
func WithChips(chips []string) Option {
	return func(w *Widget) { w.chips = chips }
}

// New builds a Widget. A nil responder leaves chat mode unbound: runs in that
// mode are ignored rather than failing.
func New(r *responder.Responder, school models.SchoolInfo, opts ...Option) *Widget {
	w := &Widget{
		responder: r,
		school:    school,
		chips:     DefaultChips,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.handlers = map[Mode]handlerFunc{
		ModePlan:  w.runPlan,
		ModeRules: func(Form) string { return w.RulesText() },
		ModeDates: func(Form) string { return w.DatesText() },
	}
	if r != nil {
		w.handlers[ModeChat] = w.runChat
	}
	return w
}

// Run executes the handler for f.Mode. ok is false when the mode has no
// handler; callers then leave the output untouched.
func (w *Widget) Run(f Form) (text string, ok bool) {
	h, ok := w.handlers[f.Mode]
	if !ok {
		return "", false
	}
	return h(f), true
}

func (w *Widget) runChat(f Form) string {
	return w.Ask(strings.TrimSpace(f.Question)).Text
}

func (w *Widget) runPlan(f Form) string {
	_, _, text := w.Plan(f.Difficulties, validation.ParseHours(f.Hours), validation.ParseDeadline(f.Deadline))
	return text
}

// Ask answers a chat question.
func (w *Widget) Ask(question string) responder.Result {
	res := w.responder.Lookup(question)
	if w.observer != nil {
		w.observer.ObserveRun(string(ModeChat))
		w.observer.RecordLookup(res.EntryID, res.Outcome)
	}
	return res
}

// Plan builds a study plan. lines is nil and text is the warning message
// when no difficulty was informed.
func (w *Widget) Plan(difficulties string, hoursPerDay float64, days int) (models.StudyPlanRequest, []models.StudyPlanLine, string) {
	w.observe(ModePlan)
	req, lines, ok := planner.Plan(difficulties, hoursPerDay, days)
	if !ok {
		return req, nil, planner.NoSubjectsMessage
	}
	return req, lines, planner.Format(req, lines)
}

// RulesText formats the school rules.
func (w *Widget) RulesText() string {
	w.observe(ModeRules)
	r := w.school.Rules
	return fmt.Sprintf("📏 Regras da escola:\n- Uniforme: %s\n- Celular: %s\n- Biblioteca: %s", r.Uniform, r.Phone, r.Library)
}

// DatesText formats the important dates.
func (w *Widget) DatesText() string {
	w.observe(ModeDates)
	d := w.school.Dates
	return fmt.Sprintf("📅 Datas importantes:\n- Feira: %s\n- Provas: %s\n- Reunião: %s", d.ScienceFair, d.Exams, d.ParentMeeting)
}

func (w *Widget) observe(m Mode) {
	if w.observer != nil {
		w.observer.ObserveRun(string(m))
	}
}

// Reset returns the cleared controls and the confirmation message.
func (w *Widget) Reset() (Form, string) {
	return DefaultForm(), ResetMessage
}

// Chip fills the question with value and switches to chat mode,
// keeping the other fields as they were.
func (w *Widget) Chip(f Form, value string) Form {
	f.Question = value
	f.Mode = ModeChat
	return f
}

// Chips returns the example questions.
func (w *Widget) Chips() []string {
	return w.chips
}

// School returns the configured school info.
func (w *Widget) School() models.SchoolInfo {
	return w.school
}

// ChatBound reports whether chat mode has a responder.
func (w *Widget) ChatBound() bool {
	return w.responder != nil
}

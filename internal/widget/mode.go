package widget

// Mode selects which handler a run dispatches to.
type Mode string

const (
	ModeChat  Mode = "chat"
	ModePlan  Mode = "plan"
	ModeRules Mode = "rules"
	ModeDates Mode = "dates"
)

// Modes lists the selectable modes in display order.
var Modes = []Mode{ModeChat, ModePlan, ModeRules, ModeDates}

var modeLabels = map[Mode]string{
	ModeChat:  "💬 Perguntar",
	ModePlan:  "📘 Plano de estudos",
	ModeRules: "📏 Regras da escola",
	ModeDates: "📅 Datas importantes",
}

// ParseMode maps a selector value to a Mode. An empty value means chat;
// unknown values are rejected.
func ParseMode(s string) (Mode, bool) {
	if s == "" {
		return ModeChat, true
	}
	m := Mode(s)
	if _, ok := modeLabels[m]; !ok {
		return "", false
	}
	return m, true
}

// Label returns the human readable name shown in the selector.
func (m Mode) Label() string {
	return modeLabels[m]
}

// PlanVisible reports whether the plan fields are shown for m.
func PlanVisible(m Mode) bool {
	return m == ModePlan
}

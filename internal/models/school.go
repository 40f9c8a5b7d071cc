package models

// SchoolRules are the house rules shown in the rules view and in chat answers.
type SchoolRules struct {
	Uniform string `json:"uniform" yaml:"uniform"`
	Phone   string `json:"phone" yaml:"phone"`
	Library string `json:"library" yaml:"library"`
}

// SchoolDates are the calendar dates shown in the dates view and in chat answers.
type SchoolDates struct {
	ScienceFair   string `json:"science_fair" yaml:"science_fair"`
	Exams         string `json:"exams" yaml:"exams"`
	ParentMeeting string `json:"parent_meeting" yaml:"parent_meeting"`
}

// SchoolInfo is the static configuration table of the widget.
// It is built once at startup and passed by value.
type SchoolInfo struct {
	Rules SchoolRules `json:"rules" yaml:"rules"`
	Dates SchoolDates `json:"dates" yaml:"dates"`
}

// DefaultSchoolInfo returns the built-in rules and dates.
func DefaultSchoolInfo() SchoolInfo {
	return SchoolInfo{
		Rules: SchoolRules{
			Uniform: "Camiseta azul, calça jeans.",
			Phone:   "Permitido só no intervalo.",
			Library: "Silêncio obrigatório.",
		},
		Dates: SchoolDates{
			ScienceFair:   "10/09/2025",
			Exams:         "20/09/2025",
			ParentMeeting: "05/09/2025",
		},
	}
}

// Merge returns a copy of s with every non-empty field of override applied.
func (s SchoolInfo) Merge(override SchoolInfo) SchoolInfo {
	out := s
	setIf(&out.Rules.Uniform, override.Rules.Uniform)
	setIf(&out.Rules.Phone, override.Rules.Phone)
	setIf(&out.Rules.Library, override.Rules.Library)
	setIf(&out.Dates.ScienceFair, override.Dates.ScienceFair)
	setIf(&out.Dates.Exams, override.Dates.Exams)
	setIf(&out.Dates.ParentMeeting, override.Dates.ParentMeeting)
	return out
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

package widget

import (
	"strconv"

	"schoolwidget/internal/validation"
)

// Form holds the raw control values of the widget, as typed by the user.
type Form struct {
	Mode         Mode
	Question     string
	Difficulties string
	Hours        string
	Deadline     string
}

// DefaultForm is the state of the controls on first load and after a reset.
func DefaultForm() Form {
	return Form{
		Mode:     ModeChat,
		Hours:    strconv.Itoa(validation.DefaultHours),
		Deadline: strconv.Itoa(validation.DefaultDeadline),
	}
}

// PlanVisible reports whether the plan box is shown for the form's mode.
func (f Form) PlanVisible() bool {
	return PlanVisible(f.Mode)
}

// IsMode is a template helper for selecting the current option.
func (f Form) IsMode(m Mode) bool {
	return f.Mode == m
}

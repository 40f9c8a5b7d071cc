// Package planner builds naive round-robin study plans.
package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"schoolwidget/internal/models"
	"schoolwidget/internal/validation"
)

// NoSubjectsMessage is returned instead of a plan when no difficulty was informed.
const NoSubjectsMessage = "⚠️ Nenhuma dificuldade informada."

// TheoryShare is the fraction of the daily budget spent on theory and exercises.
const TheoryShare = 0.7

// ParseSubjects splits a comma separated list, trimming blanks and dropping empty items.
// Duplicates are kept.
func ParseSubjects(raw string) []string {
	var subjects []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}
	return subjects
}

// Split divides a daily budget into theory and review hours.
// Theory is the rounded (half up) 70% share with a floor of one hour;
// review takes whatever is left and is never negative.
func Split(hoursPerDay float64) (theory, review float64) {
	theory = math.Max(1, math.Floor(hoursPerDay*TheoryShare+0.5))
	review = math.Max(0, hoursPerDay-theory)
	return theory, review
}

// Lines expands req into one line per day, cycling through the subjects.
// It returns nil when req has no subjects or no days, and never more than
// validation.MaxDeadline lines.
func Lines(req models.StudyPlanRequest) []models.StudyPlanLine {
	if len(req.Subjects) == 0 || req.Days < 1 {
		return nil
	}

	days := min(req.Days, validation.MaxDeadline)
	theory, review := Split(req.HoursPerDay)
	lines := make([]models.StudyPlanLine, 0, days)
	for day := 1; day <= days; day++ {
		lines = append(lines, models.StudyPlanLine{
			Day:         day,
			Subject:     req.Subjects[(day-1)%len(req.Subjects)],
			TheoryHours: theory,
			ReviewHours: review,
		})
	}
	return lines
}

// Format renders a plan as the header, a blank line and one line per day.
func Format(req models.StudyPlanRequest, lines []models.StudyPlanLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📘 Plano de Estudos (%sh/dia por %d dias)\n", FormatHours(req.HoursPerDay), req.Days)
	for _, l := range lines {
		fmt.Fprintf(&b, "\nDia %d: %s — Teoria/Exercícios %sh", l.Day, l.Subject, FormatHours(l.TheoryHours))
		if l.HasReview() {
			fmt.Fprintf(&b, " + Revisão %sh", FormatHours(l.ReviewHours))
		}
	}
	return b.String()
}

// Plan parses difficulties and builds the plan, returning the request alongside
// the lines so callers can expose both. ok is false when no subject was informed.
// days is capped at validation.MaxDeadline.
func Plan(difficulties string, hoursPerDay float64, days int) (req models.StudyPlanRequest, lines []models.StudyPlanLine, ok bool) {
	days = min(days, validation.MaxDeadline)
	req = models.StudyPlanRequest{
		Subjects:    ParseSubjects(difficulties),
		HoursPerDay: hoursPerDay,
		Days:        days,
	}
	if len(req.Subjects) == 0 {
		return req, nil, false
	}
	return req, Lines(req), true
}

// Generate returns the formatted plan, or NoSubjectsMessage.
func Generate(difficulties string, hoursPerDay float64, days int) string {
	req, lines, ok := Plan(difficulties, hoursPerDay, days)
	if !ok {
		return NoSubjectsMessage
	}
	return Format(req, lines)
}

// FormatHours prints h with the shortest representation: 2, 2.5, 0.3.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

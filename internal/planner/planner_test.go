package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolwidget/internal/models"
	"schoolwidget/internal/validation"
)

func TestParseSubjects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"two subjects", "Matemática, Física", []string{"Matemática", "Física"}},
		{"blank items dropped", " , Química,, ,História ", []string{"Química", "História"}},
		{"duplicates kept", "Física,Física", []string{"Física", "Física"}},
		{"no comma", "Biologia", []string{"Biologia"}},
		{"empty", "", nil},
		{"only separators", " , ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubjects(tt.raw))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		hours  float64
		theory float64
		review float64
	}{
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 1},
		{4, 3, 1},
		{10, 7, 3},
		{0.5, 1, 0},
		{2.5, 2, 0.5},
	}

	for _, tt := range tests {
		theory, review := Split(tt.hours)
		assert.Equal(t, tt.theory, theory, "theory for %v", tt.hours)
		assert.InDelta(t, tt.review, review, 1e-9, "review for %v", tt.hours)
	}
}

func TestSplit_WholeHoursAddUp(t *testing.T) {
	for h := 1; h <= 24; h++ {
		theory, review := Split(float64(h))
		assert.GreaterOrEqual(t, theory, 1.0)
		assert.GreaterOrEqual(t, review, 0.0)
		assert.Equal(t, float64(h), theory+review, "hours %d", h)
	}
}

func TestGenerate_TwoSubjectsThreeDays(t *testing.T) {
	got := Generate("Matemática, Física", 2, 3)

	want := strings.Join([]string{
		"📘 Plano de Estudos (2h/dia por 3 dias)",
		"",
		"Dia 1: Matemática — Teoria/Exercícios 1h + Revisão 1h",
		"Dia 2: Física — Teoria/Exercícios 1h + Revisão 1h",
		"Dia 3: Matemática — Teoria/Exercícios 1h + Revisão 1h",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestGenerate_NoReviewSuffixWhenZero(t *testing.T) {
	got := Generate("Química", 1, 1)
	assert.Equal(t, "📘 Plano de Estudos (1h/dia por 1 dias)\n\nDia 1: Química — Teoria/Exercícios 1h", got)
}

func TestGenerate_FractionalHours(t *testing.T) {
	got := Generate("Química", 2.5, 1)
	assert.Contains(t, got, "(2.5h/dia por 1 dias)")
	assert.Contains(t, got, "Teoria/Exercícios 2h + Revisão 0.5h")
}

func TestGenerate_NoSubjects(t *testing.T) {
	assert.Equal(t, NoSubjectsMessage, Generate("", 2, 5))
	assert.Equal(t, NoSubjectsMessage, Generate(" , ", 8, 30))
}

func TestLines_RoundRobin(t *testing.T) {
	req := models.StudyPlanRequest{
		Subjects:    []string{"A", "B", "C"},
		HoursPerDay: 3,
		Days:        10,
	}
	lines := Lines(req)
	require.Len(t, lines, req.Days)

	n := len(req.Subjects)
	for i := 0; i+n < len(lines); i++ {
		assert.Equal(t, lines[i].Subject, lines[i+n].Subject, "day %d vs %d", i+1, i+1+n)
	}
	for i, l := range lines {
		assert.Equal(t, i+1, l.Day)
		assert.Equal(t, req.Subjects[i%n], l.Subject)
		assert.Equal(t, req.HoursPerDay, l.TheoryHours+l.ReviewHours)
	}
}

func TestLines_Empty(t *testing.T) {
	assert.Nil(t, Lines(models.StudyPlanRequest{Days: 3, HoursPerDay: 2}))
	assert.Nil(t, Lines(models.StudyPlanRequest{Subjects: []string{"A"}, HoursPerDay: 2}))
}

func TestLines_CapsDays(t *testing.T) {
	lines := Lines(models.StudyPlanRequest{Subjects: []string{"A", "B"}, HoursPerDay: 2, Days: 2000000000})
	require.Len(t, lines, validation.MaxDeadline)
	assert.Equal(t, validation.MaxDeadline, lines[len(lines)-1].Day)
}

func TestPlan_CapsDays(t *testing.T) {
	req, lines, ok := Plan("Artes", 2, 2000000000)
	require.True(t, ok)
	assert.Equal(t, validation.MaxDeadline, req.Days)
	assert.Len(t, lines, validation.MaxDeadline)
	assert.True(t, strings.HasPrefix(Format(req, lines), "📘 Plano de Estudos (2h/dia por 365 dias)\n"))
}

func TestPlan(t *testing.T) {
	req, lines, ok := Plan("Artes", 4, 2)
	require.True(t, ok)
	assert.Equal(t, []string{"Artes"}, req.Subjects)
	assert.Len(t, lines, 2)

	_, lines, ok = Plan("", 4, 2)
	assert.False(t, ok)
	assert.Nil(t, lines)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2", FormatHours(2))
	assert.Equal(t, "2.5", FormatHours(2.5))
	assert.Equal(t, "0.3", FormatHours(0.3))
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolwidget/internal/planner"
	"schoolwidget/internal/responder"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestAsk(t *testing.T) {
	out := run(t, "ask", "Quando", "é", "a", "feira?")
	assert.Contains(t, out, "Feira de Ciências")

	out = run(t, "ask")
	assert.Equal(t, responder.EmptyMessage+"\n", out)
}

func TestPlan(t *testing.T) {
	out := run(t, "plan", "--difficulties", "Matemática, Física", "--hours", "2", "--days", "3")
	assert.Equal(t, "📘 Plano de Estudos (2h/dia por 3 dias)\n"+
		"\nDia 1: Matemática — Teoria/Exercícios 1h + Revisão 1h"+
		"\nDia 2: Física — Teoria/Exercícios 1h + Revisão 1h"+
		"\nDia 3: Matemática — Teoria/Exercícios 1h + Revisão 1h\n", out)
}

func TestPlan_DefaultsAndEmpty(t *testing.T) {
	out := run(t, "plan", "-d", "Química", "--hours", "abc", "--days=-4")
	assert.Contains(t, out, "(2h/dia por 7 dias)")
	assert.Contains(t, out, "Dia 7: Química")

	out = run(t, "plan", "-d", "Química", "--days", "2000000000")
	assert.Contains(t, out, "(2h/dia por 7 dias)")

	out = run(t, "plan")
	assert.Equal(t, planner.NoSubjectsMessage+"\n", out)
}

func TestRulesAndDates(t *testing.T) {
	assert.Contains(t, run(t, "rules"), "📏 Regras da escola:")
	assert.Contains(t, run(t, "dates"), "📅 Datas importantes:")
}

func TestConfigFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("school:\n  dates:\n    exams: \"01/12\"\n"), 0o600))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "dates"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "- Provas: 01/12")
}

func TestBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("school: [unclosed"), 0o600))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "rules"})
	assert.Error(t, cmd.Execute())
}

package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolwidget/internal/models"
)

type failingStore struct{}

func (failingStore) IncrementKeywordLookup(context.Context, string, string) error {
	return errors.New("down")
}

func (failingStore) GetAllKeywordLookups(context.Context) ([]models.KeywordLookup, error) {
	return nil, errors.New("down")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	fixed := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, store.IncrementKeywordLookup(ctx, "pomodoro", models.OutcomeMatched))
	require.NoError(t, store.IncrementKeywordLookup(ctx, "pomodoro", models.OutcomeMatched))
	require.NoError(t, store.IncrementKeywordLookup(ctx, "-", models.OutcomeEmpty))

	lookups, err := store.GetAllKeywordLookups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.KeywordLookup{
		{Keyword: "-", Outcome: models.OutcomeEmpty, Count: 1, LastSeenAt: fixed},
		{Keyword: "pomodoro", Outcome: models.OutcomeMatched, Count: 2, LastSeenAt: fixed},
	}, lookups)
}

func TestKeywordCollector(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.IncrementKeywordLookup(ctx, "feynman", models.OutcomeMatched))
	require.NoError(t, store.IncrementKeywordLookup(ctx, "-", models.OutcomeStudyTip))

	collector := &KeywordCollector{store: store, timeout: time.Second}

	expected := `
# HELP widget_answer_lookups_total Total chat answer lookups by matched entry and outcome
# TYPE widget_answer_lookups_total counter
widget_answer_lookups_total{keyword="-",outcome="study_tip"} 1
widget_answer_lookups_total{keyword="feynman",outcome="matched"} 1
`
	assert.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

func TestKeywordCollector_StoreErrorEmitsNothing(t *testing.T) {
	collector := &KeywordCollector{store: failingStore{}, timeout: time.Second}
	assert.Equal(t, 0, testutil.CollectAndCount(collector))
}

func TestMetrics_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, NewMemoryStore())

	m.ObserveRun("chat")
	m.ObserveRun("chat")
	m.ObserveRun("plan")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues("chat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("plan")))
}

func TestMetrics_RecordLookup(t *testing.T) {
	store := NewMemoryStore()
	m := New(prometheus.NewRegistry(), store)

	m.RecordLookup("mind_map", models.OutcomeMatched)

	assert.Eventually(t, func() bool {
		lookups, _ := store.GetAllKeywordLookups(context.Background())
		return len(lookups) == 1 && lookups[0].Count == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMetrics_RecordLookupStoreErrorIsLogged(t *testing.T) {
	m := New(prometheus.NewRegistry(), failingStore{})
	assert.NotPanics(t, func() { m.RecordLookup("x", models.OutcomeMatched) })
}

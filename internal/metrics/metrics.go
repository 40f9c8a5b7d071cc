package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"schoolwidget/internal/models"
)

var (
	keywordLookupDesc = prometheus.NewDesc(
		"widget_answer_lookups_total",
		"Total chat answer lookups by matched entry and outcome",
		[]string{"keyword", "outcome"},
		nil,
	)
)

// Store persists lookup counters. *db.DB and *MemoryStore implement it.
type Store interface {
	IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error
	GetAllKeywordLookups(ctx context.Context) ([]models.KeywordLookup, error)
}

// KeywordCollector is a custom Prometheus collector that reads keyword lookup
// counts from the store on each scrape.
type KeywordCollector struct {
	store   Store
	timeout time.Duration
}

// Describe sends the metric descriptor to the channel.
func (c *KeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- keywordLookupDesc
}

// Collect queries the store for all keyword lookups and emits them as counters.
func (c *KeywordCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	lookups, err := c.store.GetAllKeywordLookups(ctx)
	if err != nil {
		slog.Error("failed to collect keyword lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			keywordLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Keyword,
			l.Outcome,
		)
	}
}

// Metrics records widget usage. It implements widget.Observer.
type Metrics struct {
	store Store
	runs  *prometheus.CounterVec
}

// New registers the collectors on reg and returns a recorder writing to store.
func New(reg prometheus.Registerer, store Store) *Metrics {
	m := &Metrics{
		store: store,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "widget_runs_total",
			Help: "Total widget runs by mode",
		}, []string{"mode"}),
	}
	reg.MustRegister(m.runs, &KeywordCollector{store: store, timeout: 5 * time.Second})
	return m
}

// ObserveRun counts one run of mode.
func (m *Metrics) ObserveRun(mode string) {
	m.runs.WithLabelValues(mode).Inc()
}

// RecordLookup asynchronously records a keyword lookup outcome.
func (m *Metrics) RecordLookup(keyword, outcome string) {
	go func() {
		if err := m.store.IncrementKeywordLookup(context.Background(), keyword, outcome); err != nil {
			slog.Error("failed to record keyword lookup", "keyword", keyword, "outcome", outcome, "error", err)
		}
	}()
}

package metrics

import (
	"context"
	"sort"
	"sync"
	"time"

	"schoolwidget/internal/models"
)

type lookupKey struct {
	keyword string
	outcome string
}

// MemoryStore keeps lookup counters in process. Used when no database is configured;
// counters reset on restart.
type MemoryStore struct {
	mu      sync.Mutex
	lookups map[lookupKey]*models.KeywordLookup
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lookups: make(map[lookupKey]*models.KeywordLookup),
		now:     time.Now,
	}
}

// IncrementKeywordLookup bumps the counter for keyword and outcome.
func (s *MemoryStore) IncrementKeywordLookup(_ context.Context, keyword, outcome string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := lookupKey{keyword, outcome}
	l, ok := s.lookups[k]
	if !ok {
		l = &models.KeywordLookup{Keyword: keyword, Outcome: outcome}
		s.lookups[k] = l
	}
	l.Count++
	l.LastSeenAt = s.now()
	return nil
}

// GetAllKeywordLookups returns a snapshot of all counters ordered by keyword and outcome.
func (s *MemoryStore) GetAllKeywordLookups(_ context.Context) ([]models.KeywordLookup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.KeywordLookup, 0, len(s.lookups))
	for _, l := range s.lookups {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Keyword != out[j].Keyword {
			return out[i].Keyword < out[j].Keyword
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out, nil
}

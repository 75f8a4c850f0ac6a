package service

import (
	"sort"
	"sync"
	"time"

	"f1-monk/internal/models"

	"go.uber.org/zap"
)

const DefaultTopN = 10

// AnalyticsTracker counts knowledge-base matches. It may be shared by many
// conversations; all access goes through mu.
type AnalyticsTracker struct {
	mu      sync.Mutex
	records map[int]*models.QuestionAnalytics
	now     func() time.Time
	logger  *zap.Logger
}

// NewAnalyticsTracker uses time.Now when now is nil.
func NewAnalyticsTracker(now func() time.Time, logger *zap.Logger) *AnalyticsTracker {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsTracker{
		records: make(map[int]*models.QuestionAnalytics),
		now:     now,
		logger:  logger,
	}
}

// RecordMatch bumps the count for entry and stamps it with the current time.
func (t *AnalyticsTracker) RecordMatch(entry models.KnowledgeEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[entry.ID]
	if !ok {
		rec = &models.QuestionAnalytics{
			ID:       entry.ID,
			Question: entry.Question,
			Category: entry.Category,
		}
		t.records[entry.ID] = rec
	}
	rec.Count++
	rec.LastAskedAt = t.now()

	t.logger.Debug("Question tracked",
		zap.Int("entry_id", entry.ID),
		zap.String("category", entry.Category),
		zap.Int("count", rec.Count),
	)
}

// Restore merges previously exported records into the tracker. Counts of
// records already tracked in this process are added together and the later
// LastAskedAt wins, so the next export never lowers a persisted count.
func (t *AnalyticsTracker) Restore(records []models.QuestionAnalytics) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range records {
		if live, ok := t.records[r.ID]; ok {
			live.Count += r.Count
			if r.LastAskedAt.After(live.LastAskedAt) {
				live.LastAskedAt = r.LastAskedAt
			}
			continue
		}
		rec := r
		t.records[r.ID] = &rec
	}
}

// Get returns the record for id, if any.
func (t *AnalyticsTracker) Get(id int) (models.QuestionAnalytics, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[id]
	if !ok {
		return models.QuestionAnalytics{}, false
	}
	return *rec, true
}

// Snapshot returns a copy of every record ordered by id.
func (t *AnalyticsTracker) Snapshot() []models.QuestionAnalytics {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.QuestionAnalytics, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TopN returns at most n records by count, most recent first on ties.
// n <= 0 means DefaultTopN.
func (t *AnalyticsTracker) TopN(n int) []models.QuestionAnalytics {
	if n <= 0 {
		n = DefaultTopN
	}

	out := t.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if !out[i].LastAskedAt.Equal(out[j].LastAskedAt) {
			return out[i].LastAskedAt.After(out[j].LastAskedAt)
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

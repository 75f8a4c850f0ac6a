package service

import (
	"sync"
	"testing"
	"time"

	"f1-monk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRecordMatchCounts(t *testing.T) {
	clock := newFakeClock(testNow)
	tracker := NewAnalyticsTracker(clock.Now, zap.NewNop())
	entry := sampleEntries()[0]

	for i := 0; i < 5; i++ {
		clock.Advance(time.Minute)
		tracker.RecordMatch(entry)
	}

	got, ok := tracker.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, 5, got.Count)
	assert.Equal(t, testNow.Add(5*time.Minute), got.LastAskedAt)
	assert.Equal(t, entry.Question, got.Question)
	assert.Equal(t, entry.Category, got.Category)

	_, ok = tracker.Get(999)
	assert.False(t, ok)
}

func TestTopNOrdering(t *testing.T) {
	clock := newFakeClock(testNow)
	tracker := NewAnalyticsTracker(clock.Now, zap.NewNop())
	entries := sampleEntries()

	record := func(e models.KnowledgeEntry, times int) {
		for i := 0; i < times; i++ {
			clock.Advance(time.Second)
			tracker.RecordMatch(e)
		}
	}

	record(entries[0], 2)
	record(entries[1], 3)
	record(entries[2], 2) // ties with entries[0], asked more recently
	record(entries[3], 1)

	top := tracker.TopN(3)

	require.Len(t, top, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{top[0].ID, top[1].ID, top[2].ID})
}

func TestTopNTieOnTimestampUsesID(t *testing.T) {
	tracker := NewAnalyticsTracker(func() time.Time { return testNow }, zap.NewNop())
	entries := sampleEntries()

	tracker.RecordMatch(entries[3])
	tracker.RecordMatch(entries[1])

	top := tracker.TopN(0)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, 4, top[1].ID)
}

func TestTopNDefaultLimit(t *testing.T) {
	tracker := NewAnalyticsTracker(nil, zap.NewNop())
	for id := 1; id <= 15; id++ {
		tracker.RecordMatch(models.KnowledgeEntry{ID: id, Question: "q"})
	}

	assert.Len(t, tracker.TopN(0), DefaultTopN)
	assert.Len(t, tracker.TopN(-1), DefaultTopN)
	assert.Len(t, tracker.TopN(20), 15)
	assert.Empty(t, NewAnalyticsTracker(nil, zap.NewNop()).TopN(5))
}

func TestRecordMatchConcurrent(t *testing.T) {
	tracker := NewAnalyticsTracker(nil, zap.NewNop())
	entry := sampleEntries()[1]

	const workers, perWorker = 32, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tracker.RecordMatch(entry)
				_ = tracker.TopN(3)
			}
		}()
	}
	wg.Wait()

	got, ok := tracker.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, workers*perWorker, got.Count)
}

func TestRestoreMergesLiveRecords(t *testing.T) {
	tracker := NewAnalyticsTracker(func() time.Time { return testNow }, zap.NewNop())
	tracker.RecordMatch(sampleEntries()[0])

	tracker.Restore([]models.QuestionAnalytics{
		{ID: 1, Question: "stale", Count: 40, LastAskedAt: testNow.Add(-24 * time.Hour)},
		{ID: 2, Question: "Can I work off-campus with an F-1 visa?", Category: models.CategoryEmployment, Count: 7, LastAskedAt: testNow.Add(-time.Hour)},
	})

	first, ok := tracker.Get(1)
	require.True(t, ok)
	assert.Equal(t, 41, first.Count)
	assert.Equal(t, testNow, first.LastAskedAt)
	assert.Equal(t, sampleEntries()[0].Question, first.Question)

	second, ok := tracker.Get(2)
	require.True(t, ok)
	assert.Equal(t, 7, second.Count)

	tracker.RecordMatch(sampleEntries()[1])
	second, _ = tracker.Get(2)
	assert.Equal(t, 8, second.Count)
}

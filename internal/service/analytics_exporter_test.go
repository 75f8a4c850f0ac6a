package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"f1-monk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSink struct {
	mu      sync.Mutex
	batches [][]models.QuestionAnalytics
	err     error
}

func (s *fakeSink) UpsertBatch(ctx context.Context, records []models.QuestionAnalytics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, records)
	return nil
}

func (s *fakeSink) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches)
}

func (s *fakeSink) last() []models.QuestionAnalytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.batches) == 0 {
		return nil
	}
	return s.batches[len(s.batches)-1]
}

func TestExportSkipsEmptySnapshot(t *testing.T) {
	sink := &fakeSink{}
	exporter := NewAnalyticsExporter(NewAnalyticsTracker(nil, zap.NewNop()), sink, time.Minute, zap.NewNop())

	require.NoError(t, exporter.Export(context.Background()))
	assert.Zero(t, sink.calls())
}

func TestExportWritesSnapshot(t *testing.T) {
	tracker := NewAnalyticsTracker(nil, zap.NewNop())
	tracker.RecordMatch(sampleEntries()[0])
	tracker.RecordMatch(sampleEntries()[0])
	sink := &fakeSink{}

	require.NoError(t, NewAnalyticsExporter(tracker, sink, time.Minute, zap.NewNop()).Export(context.Background()))

	batch := sink.last()
	require.Len(t, batch, 1)
	assert.Equal(t, 2, batch[0].Count)
}

func TestExportPropagatesSinkError(t *testing.T) {
	tracker := NewAnalyticsTracker(nil, zap.NewNop())
	tracker.RecordMatch(sampleEntries()[0])
	sinkErr := errors.New("connection refused")

	err := NewAnalyticsExporter(tracker, &fakeSink{err: sinkErr}, time.Minute, zap.NewNop()).Export(context.Background())
	assert.ErrorIs(t, err, sinkErr)
}

func TestExporterRunFlushesOnShutdown(t *testing.T) {
	tracker := NewAnalyticsTracker(nil, zap.NewNop())
	sink := &fakeSink{}
	exporter := NewAnalyticsExporter(tracker, sink, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		exporter.Run(ctx)
	}()

	tracker.RecordMatch(sampleEntries()[1])
	require.Eventually(t, func() bool { return sink.calls() > 0 }, time.Second, 5*time.Millisecond)

	tracker.RecordMatch(sampleEntries()[2])
	cancel()
	<-done

	assert.Len(t, sink.last(), 2)
}

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var seedFile = filepath.Join("..", "..", "data", "knowledge_base.yaml")

func TestRunAsk(t *testing.T) {
	var out bytes.Buffer

	err := runAsk(context.Background(), seedFile, 1, []string{"Can I work off-campus?", "visa interview", "   "}, &out, zap.NewNop())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "F-1 students can work off-campus through CPT or OPT.")
	assert.Contains(t, text, "[source=knowledge_base intent=employment confidence=1.00 entry=2]")
	assert.Contains(t, text, "[source=classifier intent=visa confidence=0.80]")
	assert.Contains(t, text, "! input rejected: empty message")
}

func TestRunAskMissingKnowledgeBase(t *testing.T) {
	err := runAsk(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), 1, []string{"hi"}, &bytes.Buffer{}, zap.NewNop())
	assert.Error(t, err)
}

func TestRunDeadlines(t *testing.T) {
	profile, err := loadProfile(filepath.Join("testdata", "profile.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Priya Raman", profile.Name)
	assert.Equal(t, 30, profile.ReminderDaysThreshold)

	var out bytes.Buffer
	now := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, runDeadlines(profile, now, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "I-20 expires in 10 days")
	assert.Contains(t, lines[1], "OPT application window open (30 days until program end)")
	assert.Equal(t, "[high] I-20 Extension Reminder: I-20 expires in 10 days", lines[3])
}

func TestRunDeadlinesNothingDue(t *testing.T) {
	profile, err := loadProfile(filepath.Join("testdata", "profile.yaml"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runDeadlines(profile, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), &out))
	assert.Equal(t, "No upcoming deadlines.\n", out.String())
}

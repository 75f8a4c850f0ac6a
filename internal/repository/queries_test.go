package repository

import (
	"testing"
	"time"

	"f1-monk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertKnowledgeQuery(t *testing.T) {
	sql, args, err := upsertKnowledgeQuery([]models.KnowledgeEntry{
		{ID: 1, Question: "q1", Answer: "a1", Category: "academic"},
		{ID: 2, Question: "q2", Answer: "a2", Category: "travel"},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO knowledge_entries (id,question,answer,category)")
	assert.Contains(t, sql, "($1,$2,$3,$4),($5,$6,$7,$8)")
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE")
	assert.Equal(t, []interface{}{1, "q1", "a1", "academic", 2, "q2", "a2", "travel"}, args)
}

func TestUpsertProfileQuery(t *testing.T) {
	visa := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	p := models.NewUserProfile("user-1", "Priya Raman", "priya@state.edu")
	p.VisaExpiryDate = &visa

	sql, args, err := upsertProfileQuery(p).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO user_profiles")
	assert.Contains(t, sql, "$15")
	assert.NotContains(t, sql, "$16")
	assert.Contains(t, sql, "visa_expiry_date = EXCLUDED.visa_expiry_date")
	require.Len(t, args, len(profileColumns))
	assert.Equal(t, "user-1", args[0])
	assert.Equal(t, &visa, args[11])
}

func TestListNotificationsQuery(t *testing.T) {
	sql, args, err := listNotificationsQuery("user-1").ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, title, content, priority, created_at, is_read FROM notifications WHERE (user_id = $1 OR user_id IS NULL) ORDER BY created_at DESC",
		sql)
	assert.Equal(t, []interface{}{"user-1"}, args)
}

func TestUpsertAnalyticsQuery(t *testing.T) {
	at := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	sql, args, err := upsertAnalyticsQuery([]models.QuestionAnalytics{
		{ID: 3, Question: "q", Category: "travel", Count: 4, LastAskedAt: at},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO question_analytics")
	assert.Contains(t, sql, "count = EXCLUDED.count")
	assert.Equal(t, []interface{}{3, "q", "travel", 4, at}, args)
}

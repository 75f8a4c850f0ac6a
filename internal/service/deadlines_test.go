package service

import (
	"testing"
	"time"

	"f1-monk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 3, 10, 30, 0, 0, time.UTC)

func daysFrom(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, days)
}

func testProfile() *models.UserProfile {
	p := models.NewUserProfile("user-1", "Priya Raman", "priya@state.edu")
	p.ProgramStartDate = daysFrom(testNow, -500)
	p.ProgramEndDate = daysFrom(testNow, 200)
	p.I20ExpiryDate = daysFrom(testNow, 260)
	return p
}

func TestComputeDeadlinesI20Only(t *testing.T) {
	p := testProfile()
	p.I20ExpiryDate = daysFrom(testNow, 10)

	got := ComputeDeadlines(p, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, models.DeadlineI20Expiry, got[0].Kind)
	assert.Equal(t, 10, got[0].DaysRemaining)
	assert.Equal(t, "I-20 expires in 10 days", got[0].Message)
}

func TestComputeDeadlinesThresholds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.UserProfile)
		want   []models.DeadlineKind
	}{
		{name: "nothing due", mutate: func(p *models.UserProfile) {}},
		{name: "i20 at 59 days", mutate: func(p *models.UserProfile) { p.I20ExpiryDate = daysFrom(testNow, 59) }, want: []models.DeadlineKind{models.DeadlineI20Expiry}},
		{name: "i20 at 60 days", mutate: func(p *models.UserProfile) { p.I20ExpiryDate = daysFrom(testNow, 60) }},
		{name: "opt at 90 days", mutate: func(p *models.UserProfile) { p.ProgramEndDate = daysFrom(testNow, 90) }, want: []models.DeadlineKind{models.DeadlineOptWindow}},
		{name: "opt at 91 days", mutate: func(p *models.UserProfile) { p.ProgramEndDate = daysFrom(testNow, 91) }},
		{name: "opt already applied", mutate: func(p *models.UserProfile) {
			p.ProgramEndDate = daysFrom(testNow, 30)
			p.HasOptApplied = true
		}},
		{name: "visa at 179 days", mutate: func(p *models.UserProfile) {
			v := daysFrom(testNow, 179)
			p.VisaExpiryDate = &v
		}, want: []models.DeadlineKind{models.DeadlineVisaExpiry}},
		{name: "visa at 180 days", mutate: func(p *models.UserProfile) {
			v := daysFrom(testNow, 180)
			p.VisaExpiryDate = &v
		}},
		{name: "all three in order", mutate: func(p *models.UserProfile) {
			v := daysFrom(testNow, 100)
			p.VisaExpiryDate = &v
			p.ProgramEndDate = daysFrom(testNow, 20)
			p.I20ExpiryDate = daysFrom(testNow, 40)
		}, want: []models.DeadlineKind{models.DeadlineI20Expiry, models.DeadlineOptWindow, models.DeadlineVisaExpiry}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			tt.mutate(p)

			got := ComputeDeadlines(p, testNow)

			kinds := make([]models.DeadlineKind, 0, len(got))
			for _, d := range got {
				kinds = append(kinds, d.Kind)
			}
			assert.ElementsMatch(t, tt.want, kinds)
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, kinds)
			}
		})
	}
}

func TestComputeDeadlinesPastDates(t *testing.T) {
	p := testProfile()
	p.I20ExpiryDate = daysFrom(testNow, -5)
	p.ProgramEndDate = daysFrom(testNow, -3)

	got := ComputeDeadlines(p, testNow)

	require.Len(t, got, 2)
	assert.Equal(t, -5, got[0].DaysRemaining)
	assert.Equal(t, "I-20 expires in -5 days", got[0].Message)
	assert.Equal(t, "OPT application window open (-3 days until program end)", got[1].Message)
}

func TestComputeDeadlinesCalendarDays(t *testing.T) {
	now := time.Date(2025, time.March, 3, 23, 50, 0, 0, time.UTC)
	p := testProfile()
	p.I20ExpiryDate = time.Date(2025, time.March, 4, 0, 10, 0, 0, time.UTC)

	got := ComputeDeadlines(p, now)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].DaysRemaining)
}

func TestComputeDeadlinesDateOnlyAcrossZones(t *testing.T) {
	i20 := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)

	zones := map[string]*time.Location{
		"west of UTC": time.FixedZone("PST", -8*60*60),
		"east of UTC": time.FixedZone("JST", 9*60*60),
		"UTC":         time.UTC,
	}
	for name, loc := range zones {
		t.Run(name, func(t *testing.T) {
			now := time.Date(2025, time.March, 3, 10, 0, 0, 0, loc)
			p := testProfile()
			p.I20ExpiryDate = i20

			got := ComputeDeadlines(p, now)

			require.Len(t, got, 1)
			assert.Equal(t, 10, got[0].DaysRemaining)
			assert.Equal(t, "I-20 expires in 10 days", got[0].Message)
		})
	}
}

func TestComputeDeadlinesLateEveningWestOfUTC(t *testing.T) {
	// 2025-03-03 23:00 in Los Angeles is already 2025-03-04 in UTC.
	now := time.Date(2025, time.March, 3, 23, 0, 0, 0, time.FixedZone("PST", -8*60*60))
	p := testProfile()
	p.I20ExpiryDate = time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	got := ComputeDeadlines(p, now)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].DaysRemaining)
}

func TestComputeDeadlinesInvalidData(t *testing.T) {
	t.Run("nil profile", func(t *testing.T) {
		assert.Empty(t, ComputeDeadlines(nil, testNow))
	})

	t.Run("missing dates", func(t *testing.T) {
		p := models.NewUserProfile("user-1", "Sam", "sam@state.edu")
		assert.Empty(t, ComputeDeadlines(p, testNow))
	})

	t.Run("program ends before it starts", func(t *testing.T) {
		p := testProfile()
		p.ProgramStartDate = daysFrom(testNow, 50)
		p.ProgramEndDate = daysFrom(testNow, 10)
		p.I20ExpiryDate = daysFrom(testNow, 5)

		var got []models.DeadlineDescriptor
		require.NotPanics(t, func() { got = ComputeDeadlines(p, testNow) })
		require.Len(t, got, 1)
		assert.Equal(t, models.DeadlineI20Expiry, got[0].Kind)
	})
}

func TestComputeDeadlinesIsPure(t *testing.T) {
	p := testProfile()
	p.I20ExpiryDate = daysFrom(testNow, 30)
	before := p.Clone()

	first := ComputeDeadlines(p, testNow)
	second := ComputeDeadlines(p, testNow)

	assert.Equal(t, first, second)
	assert.Equal(t, before, p)
}

package service

import (
	"math"
	"strings"
	"time"

	"f1-monk/internal/models"
)

// Synthesized notification ids count down from SynthesizedIDCeiling.
// Externally supplied notifications must use ids below SynthesizedIDFloor.
const (
	SynthesizedIDCeiling = math.MaxInt32
	SynthesizedIDFloor   = SynthesizedIDCeiling - 1<<20
	deadlineKindCount    = 3
)

var deadlineTitles = map[models.DeadlineKind]string{
	models.DeadlineI20Expiry:  "I-20 Extension Reminder",
	models.DeadlineOptWindow:  "OPT Application Deadline",
	models.DeadlineVisaExpiry: "Visa Renewal Reminder",
}

const fallbackDeadlineTitle = "F1 Status Alert"

// Synthesize appends a notification for every deadline whose message is not
// already contained in an existing notification's content. A deadline is
// dropped when its slice of the reserved id range is full. existing is not modified.
func Synthesize(existing []models.Notification, deadlines []models.DeadlineDescriptor, now time.Time) []models.Notification {
	result := make([]models.Notification, len(existing), len(existing)+len(deadlines))
	copy(result, existing)

	taken := make(map[int]struct{}, len(result))
	for _, n := range result {
		taken[n.ID] = struct{}{}
	}

	for pos, d := range deadlines {
		if containsMessage(result, d.Message) {
			continue
		}

		id, ok := freeSynthesizedID(taken, SynthesizedIDCeiling-pos, SynthesizedIDFloor)
		if !ok {
			continue
		}
		taken[id] = struct{}{}

		result = append(result, models.Notification{
			ID:        id,
			Title:     titleFor(d.Kind),
			Content:   d.Message,
			Priority:  priorityFor(d.Kind),
			CreatedAt: now,
		})
	}

	return result
}

// freeSynthesizedID walks down from start in steps of deadlineKindCount and
// returns the first id not in taken. It fails once the walk passes floor.
func freeSynthesizedID(taken map[int]struct{}, start, floor int) (int, bool) {
	for id := start; id >= floor; id -= deadlineKindCount {
		if _, ok := taken[id]; !ok {
			return id, true
		}
	}
	return 0, false
}

func containsMessage(notifications []models.Notification, message string) bool {
	for _, n := range notifications {
		if strings.Contains(n.Content, message) {
			return true
		}
	}
	return false
}

func titleFor(kind models.DeadlineKind) string {
	if title, ok := deadlineTitles[kind]; ok {
		return title
	}
	return fallbackDeadlineTitle
}

func priorityFor(kind models.DeadlineKind) models.NotificationPriority {
	switch kind {
	case models.DeadlineI20Expiry, models.DeadlineOptWindow:
		return models.PriorityHigh
	default:
		return models.PriorityNormal
	}
}

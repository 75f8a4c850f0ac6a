package service

import (
	"sync"
	"time"

	"f1-monk/internal/models"

	"go.uber.org/zap"
)

// Session owns one signed-in user's profile, notifications and conversation.
// Every profile or notification change recomputes deadlines, the welcome
// message and synthesized notifications explicitly.
type Session struct {
	mu            sync.Mutex
	userID        string
	profile       *models.UserProfile
	notifications []models.Notification
	conversation  *Conversation
	now           func() time.Time
	logger        *zap.Logger
}

func NewSession(userID string, profile *models.UserProfile, conversation *Conversation, now func() time.Time, logger *zap.Logger) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		userID:       userID,
		profile:      profile.Clone(),
		conversation: conversation,
		now:          now,
		logger:       logger,
	}
	s.mu.Lock()
	s.refreshLocked()
	s.mu.Unlock()
	return s
}

func (s *Session) UserID() string {
	return s.userID
}

func (s *Session) Conversation() *Conversation {
	return s.conversation
}

// Profile returns a copy of the live profile, or nil when none has been saved.
func (s *Session) Profile() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// UpdateProfile replaces the profile wholesale and recomputes derived state.
func (s *Session) UpdateProfile(profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile.Clone()
	s.refreshLocked()
}

// Deadlines computes the current deadline descriptors.
func (s *Session) Deadlines() []models.DeadlineDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeDeadlines(s.profile, s.now())
}

// LoadNotifications replaces the list with externally supplied notifications
// and appends profile-derived ones that are not already present.
func (s *Session) LoadNotifications(external []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]models.Notification(nil), external...)
	s.refreshLocked()
}

func (s *Session) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.notifications...)
}

// MarkRead flips the read flag of notification id. It reports whether id was found.
func (s *Session) MarkRead(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return true
		}
	}
	return false
}

// UnreadCount counts unread high-priority notifications.
func (s *Session) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if n.Priority == models.PriorityHigh && !n.IsRead {
			count++
		}
	}
	return count
}

func (s *Session) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

func (s *Session) refreshLocked() {
	now := s.now()
	deadlines := ComputeDeadlines(s.profile, now)

	if s.conversation != nil {
		s.conversation.UpdateWelcome(BuildWelcome(s.profile, deadlines))
	}

	if s.profile == nil || !s.profile.NotificationsEnabled {
		return
	}

	before := len(s.notifications)
	s.notifications = Synthesize(s.notifications, deadlines, now)
	if added := len(s.notifications) - before; added > 0 {
		s.logger.Info("Deadline notifications synthesized",
			zap.String("user_id", s.userID),
			zap.Int("added", added),
		)
	}
}

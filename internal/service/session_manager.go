package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"f1-monk/internal/models"
	"f1-monk/internal/repository"

	"go.uber.org/zap"
)

type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

type NotificationSource interface {
	ListByUserID(ctx context.Context, userID string) ([]models.Notification, error)
}

// SessionManager keeps one Session per signed-in user. Sessions share the
// knowledge base, classifier and analytics tracker.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	profiles   ProfileStore
	alerts     NotificationSource
	knowledge  KnowledgeSource
	classifier Classifier
	tracker    MatchRecorder
	now        func() time.Time
	logger     *zap.Logger
}

func NewSessionManager(
	profiles ProfileStore,
	alerts NotificationSource,
	knowledge KnowledgeSource,
	classifier Classifier,
	tracker MatchRecorder,
	now func() time.Time,
	logger *zap.Logger,
) *SessionManager {
	if now == nil {
		now = time.Now
	}
	return &SessionManager{
		sessions:   make(map[string]*Session),
		profiles:   profiles,
		alerts:     alerts,
		knowledge:  knowledge,
		classifier: classifier,
		tracker:    tracker,
		now:        now,
		logger:     logger,
	}
}

// Get returns the user's session, building it from the profile store and
// notification source on first use.
func (m *SessionManager) Get(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	if ok {
		return s, nil
	}

	profile, err := m.profiles.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	external, err := m.alerts.ListByUserID(ctx, userID)
	if err != nil {
		m.logger.Warn("Failed to load notifications, starting with none",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		external = nil
	}

	conversation := NewConversation(BuildWelcome(nil, nil), m.knowledge, m.classifier, m.tracker, m.now, m.logger)
	created := NewSession(userID, profile, conversation, m.now, m.logger)
	created.LoadNotifications(external)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = created

	m.logger.Info("Session started", zap.String("user_id", userID), zap.Bool("has_profile", profile != nil))
	return created, nil
}

// SaveProfile persists profile and replaces it in the user's session.
func (m *SessionManager) SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) (*Session, error) {
	s, err := m.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.ID = userID
	profile.UpdatedAt = m.now()
	if err := m.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.UpdateProfile(profile)
	return s, nil
}

// SignOut drops the user's session.
func (m *SessionManager) SignOut(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[userID]; !ok {
		return false
	}
	delete(m.sessions, userID)
	m.logger.Info("Session ended", zap.String("user_id", userID))
	return true
}

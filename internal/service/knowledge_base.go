package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"f1-monk/internal/models"

	"go.uber.org/zap"
)

var (
	ErrKnowledgeBaseNotLoaded = errors.New("knowledge base not loaded")
	ErrKnowledgeBaseLoaded    = errors.New("knowledge base already loaded")
	ErrDuplicateEntryID       = errors.New("duplicate knowledge entry id")
)

// KnowledgeProvider supplies the full ordered set of knowledge entries.
type KnowledgeProvider interface {
	ListAll(ctx context.Context) ([]models.KnowledgeEntry, error)
}

// KnowledgeBase holds the question/answer records for the lifetime of the
// process. It is written once by Load and read-only afterwards.
type KnowledgeBase struct {
	mu      sync.RWMutex
	entries []models.KnowledgeEntry
	loaded  bool
	logger  *zap.Logger
}

func NewKnowledgeBase(logger *zap.Logger) *KnowledgeBase {
	return &KnowledgeBase{
		logger: logger,
	}
}

// Load stores entries in the given order. Ids must be unique.
func (kb *KnowledgeBase) Load(entries []models.KnowledgeEntry) error {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	if kb.loaded {
		return ErrKnowledgeBaseLoaded
	}

	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateEntryID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	kb.entries = append([]models.KnowledgeEntry(nil), entries...)
	kb.loaded = true

	kb.logger.Info("Knowledge base loaded", zap.Int("entries", len(kb.entries)))
	return nil
}

// LoadFrom fetches entries from provider and loads them.
func (kb *KnowledgeBase) LoadFrom(ctx context.Context, provider KnowledgeProvider) error {
	entries, err := provider.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch knowledge entries: %w", err)
	}
	return kb.Load(entries)
}

// Entries returns a copy of the stored entries in insertion order.
func (kb *KnowledgeBase) Entries() ([]models.KnowledgeEntry, error) {
	kb.mu.RLock()
	defer kb.mu.RUnlock()

	if !kb.loaded {
		return nil, ErrKnowledgeBaseNotLoaded
	}
	return append([]models.KnowledgeEntry(nil), kb.entries...), nil
}

// ByCategory groups entries by category and returns the sorted category keys.
func (kb *KnowledgeBase) ByCategory() (map[string][]models.KnowledgeEntry, []string, error) {
	entries, err := kb.Entries()
	if err != nil {
		return nil, nil, err
	}

	grouped := make(map[string][]models.KnowledgeEntry)
	for _, e := range entries {
		grouped[e.Category] = append(grouped[e.Category], e)
	}

	categories := make([]string, 0, len(grouped))
	for c := range grouped {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return grouped, categories, nil
}

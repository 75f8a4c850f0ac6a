package repository

import (
	"context"
	"fmt"
	"os"

	"f1-monk/internal/models"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout of the knowledge-base seed file.
type SeedFile struct {
	Entries       []models.KnowledgeEntry `yaml:"entries"`
	Notifications []models.Notification   `yaml:"notifications"`
}

// LoadSeedFile reads and validates a seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, e := range seed.Entries {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("entry %d (id %d): question and answer are required", i, e.ID)
		}
	}
	for i := range seed.Notifications {
		seed.Notifications[i].Priority = models.ParsePriority(string(seed.Notifications[i].Priority))
	}

	return &seed, nil
}

// FileKnowledgeProvider serves knowledge entries from a seed file.
type FileKnowledgeProvider struct {
	path string
}

func NewFileKnowledgeProvider(path string) *FileKnowledgeProvider {
	return &FileKnowledgeProvider{path: path}
}

func (p *FileKnowledgeProvider) ListAll(ctx context.Context) ([]models.KnowledgeEntry, error) {
	seed, err := LoadSeedFile(p.path)
	if err != nil {
		return nil, err
	}
	return seed.Entries, nil
}

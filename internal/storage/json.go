package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gtl/internal/domain"
)

// Save writes the request to the configured JSON output file under a new id.
func (s *JSONStorage) Save(request *domain.DiscoveryRequest) (*domain.SavedRequest, error) {
	saved := &domain.SavedRequest{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().Format(time.RFC3339),
		WorkDir:   s.cfg.GetWorkDir(),
		Request:   domain.ToDocument(request),
	}

	data, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}
	return saved, nil
}

// Load reads the last saved request from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.SavedRequest, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}
	var saved domain.SavedRequest
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	if _, err := uuid.Parse(saved.ID); err != nil {
		return nil, fmt.Errorf("parse request: invalid id %q: %w", saved.ID, err)
	}
	return &saved, nil
}

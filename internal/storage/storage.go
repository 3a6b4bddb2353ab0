package storage

import (
	"gtl/internal/config"
	"gtl/internal/domain"
)

// Storage persists and loads built discovery requests (e.g. for the show command).
type Storage interface {
	Save(request *domain.DiscoveryRequest) (*domain.SavedRequest, error)
	Load() (*domain.SavedRequest, error)
}

// JSONStorage stores the last request in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

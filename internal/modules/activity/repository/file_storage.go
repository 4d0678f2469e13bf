package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// FileStorage implements activity.Repository using file system. Records
// are one JSON file each, named by their nanosecond id, so lexicographic
// file order is chronological order.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based activity repository
func NewFileStorage(basePath string) (Repository, error) {
	activityPath := filepath.Join(basePath, "activity")
	if err := os.MkdirAll(activityPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create activity directory").Wrap(err)
	}

	return &FileStorage{basePath: activityPath}, nil
}

func (s *FileStorage) SaveRecord(record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.basePath, fmt.Sprintf("%020d.json", record.ID))
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return oops.With("record_id", record.ID, "context", "failed to marshal record").Wrap(err)
	}

	return os.WriteFile(path, data, 0644)
}

func (s *FileStorage) GetRecent(limit int) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Record{}, nil
		}
		return nil, oops.With("directory", s.basePath, "context", "failed to read activity directory").Wrap(err)
	}

	// Newest first
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() > entries[j].Name()
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	records := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (*domain.Record, bool) {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			return nil, false
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			return nil, false
		}

		var record domain.Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, false
		}

		return &record, true
	})

	return records, nil
}

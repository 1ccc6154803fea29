package schedule

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"masters-league-service/internal/domain"
	"masters-league-service/internal/logging"
)

// Store persists the user-edited head-to-head schedule as a single JSON file.
// Saves are serialized with a mutex and written via temp file + rename so a
// concurrent reader never observes a partial file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewStore constructs a Store backed by the file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load returns the stored schedule. A missing, unreadable, or malformed file
// falls back to the built-in default table; absence is never an error.
func (s *Store) Load() domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn(s.logger, "schedule file unreadable, serving default", logging.FieldPath, s.path, "error", err)
		}
		return Default()
	}

	var sched domain.Schedule
	if err := json.Unmarshal(data, &sched); err != nil {
		logging.Warn(s.logger, "schedule file malformed, serving default", logging.FieldPath, s.path, "error", err)
		return Default()
	}
	if len(sched) == 0 {
		return Default()
	}
	return sched
}

// Save replaces the stored schedule wholesale. Last writer wins.
func (s *Store) Save(sched domain.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sched, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

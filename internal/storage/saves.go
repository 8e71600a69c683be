package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// PutSave stores raw saved-game data under key, replacing any previous value.
func (s *Store) PutSave(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write save %q: %w", key, err)
	}
	return nil
}

// GetSave returns the raw data stored under key.
// Returns nil, nil if there is none.
func (s *Store) GetSave(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM saves WHERE key = ?", key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read save %q: %w", key, err)
	}
	return data, nil
}

// DeleteSave removes the save stored under key. Deleting a missing key is
// not an error.
func (s *Store) DeleteSave(key string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", key, err)
	}
	return nil
}

// Save implements t2048.Sink by writing the game as YAML.
func (s *Store) Save(key string, saved t2048.Saved) error {
	data, err := t2048.EncodeSaved(saved)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return s.PutSave(key, data)
}

// LoadSaved reads and decodes the game stored under key. The boolean is
// false when nothing is stored. A stored game that cannot be restored is
// reported with an error wrapping t2048.ErrInvalidState.
func (s *Store) LoadSaved(key string) (t2048.Saved, bool, error) {
	data, err := s.GetSave(key)
	if err != nil || data == nil {
		return t2048.Saved{}, false, err
	}

	saved, err := t2048.DecodeSaved(data)
	if err != nil {
		return t2048.Saved{}, false, fmt.Errorf("storage: save %q: %w", key, err)
	}
	return saved, true, nil
}

// Ensure Store can persist sessions
var _ t2048.Sink = (*Store)(nil)

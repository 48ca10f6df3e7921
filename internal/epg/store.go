package epg

import (
	"errors"
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
	"github.com/Kopaev/Turksat-42e-RUS/internal/structures"
)

// ErrNoCache collapses every load failure — missing file, unreadable
// file, garbage content — into the one signal the query path understands.
var ErrNoCache = errors.New("no snapshot cache")

// Store persists snapshots to a single JSON file and reports their
// freshness off the file mtime. Writes go through a temp file plus
// rename, so a concurrent reader sees either the old complete snapshot
// or the new one, never a torn file.
type Store struct {
	path      string
	freshness time.Duration
}

func NewStore(conf *structures.Config) *Store {
	return &Store{
		path:      conf.Snapshot.FilePath,
		freshness: conf.Snapshot.Freshness,
	}
}

// Write serializes and atomically replaces the stored snapshot.
func (s *Store) Write(snapshot *models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return &PersistError{Path: s.path, Err: err}
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return &PersistError{Path: s.path, Err: err}
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return &PersistError{Path: s.path, Err: err}
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return &PersistError{Path: s.path, Err: err}
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return &PersistError{Path: s.path, Err: err}
	}

	if err = os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return &PersistError{Path: s.path, Err: err}
	}
	return nil
}

// Load reads the stored snapshot back. Any failure means ErrNoCache; the
// distinction between "absent" and "corrupt" does not matter to callers,
// both end in a client-initiated refresh.
func (s *Store) Load() (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ErrNoCache
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, ErrNoCache
	}
	if snapshot.Channels == nil {
		return nil, ErrNoCache
	}
	return &snapshot, nil
}

// Stat reports on the stored snapshot without deserializing it.
func (s *Store) Stat() *models.CacheInfo {
	fi, err := os.Stat(s.path)
	if err != nil {
		return &models.CacheInfo{Exists: false}
	}

	age := time.Since(fi.ModTime())
	return &models.CacheInfo{
		Exists:     true,
		AgeSeconds: int64(age.Seconds()),
		AgeHuman:   formatAge(age),
		SizeKB:     float64(fi.Size()) / 1024,
		Valid:      age < s.freshness,
	}
}

func formatAge(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

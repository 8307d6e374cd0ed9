package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"devfestsite/internal/domain"
)

const (
	dataFile     = "data.json"
	scheduleFile = "schedule.json"
	shareSubdir  = "share"
)

// Store owns the generated artifacts under the public directory: the two
// JSON documents and the static share pages. Generation writes through it
// and the site server reads through it; the runtime never writes back.
type Store struct {
	publicDir string
}

// NewStore returns a store rooted at publicDir. The directory is created on
// first write, not here.
func NewStore(publicDir string) *Store {
	return &Store{publicDir: publicDir}
}

// ShareDir is the directory share pages are written to.
func (s *Store) ShareDir() string {
	return filepath.Join(s.publicDir, shareSubdir)
}

// SaveData writes data.json, pretty-printed with two-space indent.
func (s *Store) SaveData(doc *domain.DataDocument) error {
	return s.writeJSON(dataFile, doc)
}

// LoadData reads data.json.
func (s *Store) LoadData() (*domain.DataDocument, error) {
	var doc domain.DataDocument
	if err := s.readJSON(dataFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SaveSchedule writes schedule.json, pretty-printed with two-space indent.
func (s *Store) SaveSchedule(doc *domain.ScheduleDocument) error {
	return s.writeJSON(scheduleFile, doc)
}

// LoadSchedule reads schedule.json.
func (s *Store) LoadSchedule() (*domain.ScheduleDocument, error) {
	var doc domain.ScheduleDocument
	if err := s.readJSON(scheduleFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteSharePage writes one share artifact under share/, creating the
// directory as needed.
func (s *Store) WriteSharePage(filename, html string) error {
	dir := s.ShareDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create share dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write share page %s: %w", filename, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.publicDir, 0o755); err != nil {
		return fmt.Errorf("create public dir: %w", err)
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(s.publicDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) readJSON(name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(s.publicDir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

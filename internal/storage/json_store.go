package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

type jsonDocument struct {
	Version     int                          `json:"version"`
	Settings    models.Settings              `json:"settings"`
	Completions map[string]models.Completion `json:"completions"`
}

// JSONStore keeps everything in one JSON file, rewritten on every change.
//
// It is not safe for concurrent use, and two processes sharing a file will
// overwrite each other's changes.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.commit(&jsonDocument{
		Version:     1,
		Settings:    DefaultSettings(),
		Completions: make(map[string]models.Completion),
	})
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &jsonDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Completions == nil {
		doc.Completions = make(map[string]models.Completion)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// commit writes doc to disk and only then makes it the in-memory state.
func (s *JSONStore) commit(doc *jsonDocument) error {
	if err := s.write(doc); err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// draft returns a copy of the loaded document that can be changed freely.
func (s *JSONStore) draft() *jsonDocument {
	doc := *s.doc
	doc.Completions = make(map[string]models.Completion, len(s.doc.Completions))
	for date, c := range s.doc.Completions {
		doc.Completions[date] = c
	}
	return &doc
}

func (s *JSONStore) write(doc *jsonDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write then rename so a crash never leaves a truncated file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, ErrNotLoaded
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	doc := s.draft()
	doc.Settings = settings
	return s.commit(doc)
}

func (s *JSONStore) SaveCompletion(c models.Completion) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if existing, ok := s.doc.Completions[c.Date]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	}
	c, err := prepareCompletion(c)
	if err != nil {
		return err
	}
	doc := s.draft()
	doc.Completions[c.Date] = c
	return s.commit(doc)
}

func (s *JSONStore) GetCompletion(date string) (models.Completion, error) {
	if s.doc == nil {
		return models.Completion{}, ErrNotLoaded
	}
	c, ok := s.doc.Completions[date]
	if !ok {
		return models.Completion{}, fmt.Errorf("completion for %s: %w", date, ErrNotFound)
	}
	return c, nil
}

func (s *JSONStore) GetCompletionsInRange(start, end string) ([]models.Completion, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	var out []models.Completion
	for date, c := range s.doc.Completions {
		if date >= start && date <= end {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out, nil
}

func (s *JSONStore) DeleteCompletion(date string) error {
	if s.doc == nil {
		return ErrNotLoaded
	}
	if _, ok := s.doc.Completions[date]; !ok {
		return fmt.Errorf("completion for %s: %w", date, ErrNotFound)
	}
	doc := s.draft()
	delete(doc.Completions, date)
	return s.commit(doc)
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

package shortlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore keeps the shortlist in one JSON file. It is the fallback store
// when no database is configured and mirrors the file layout used before the
// database option existed, so old data files load as-is.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create shortlist dir: %w", err)
	}
	store := &FileStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := store.save([]Candidate{}); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *FileStore) Add(_ context.Context, c Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.Email == c.Email {
			return ErrAlreadyShortlisted
		}
	}
	return s.save(append(all, c))
}

func (s *FileStore) Remove(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, c := range all {
		if c.Email != email {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return s.save(kept)
}

func (s *FileStore) List(_ context.Context) ([]Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) GetByEmail(_ context.Context, email string) (Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return Candidate{}, err
	}
	for _, c := range all {
		if c.Email == email {
			return c, nil
		}
	}
	return Candidate{}, ErrNotFound
}

func (s *FileStore) UpdateStatus(_ context.Context, email, status string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Email == email {
			all[i].Status = status
			all[i].StatusUpdatedAt = &at
			return s.save(all)
		}
	}
	return ErrNotFound
}

func (s *FileStore) AddNote(_ context.Context, email string, note Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Email == email {
			all[i].Notes = append(all[i].Notes, note)
			return s.save(all)
		}
	}
	return ErrNotFound
}

func (s *FileStore) load() ([]Candidate, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Candidate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read shortlist: %w", err)
	}
	var all []Candidate
	if err := json.Unmarshal(data, &all); err != nil {
		// A corrupt file starts over rather than blocking every operation.
		return []Candidate{}, nil
	}
	if all == nil {
		all = []Candidate{}
	}
	return all, nil
}

func (s *FileStore) save(all []Candidate) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write shortlist: %w", err)
	}
	return os.Rename(tmp, s.path)
}

package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

// ErrJobNotFound is returned when no posting carries the requested id.
var ErrJobNotFound = errors.New("job not found")

// Store provides all functions to read and mutate the job collection.
// Mutating calls persist the collection before returning; a returned
// error means the in-memory state was rolled back to what it was.
type Store interface {
	Load() error
	Save() error
	Append(job Job) error
	Remove(id int64) (Job, error)
	Find(id int64) (Job, bool)
	All() []Job
}

// FileStore keeps the ordered job collection in memory, mirrored to a
// single JSON file. The mutex serializes mutation+save sequences across
// handlers; the file lock serializes them across processes.
type FileStore struct {
	path string
	fl   *flock.Flock
	mu   sync.Mutex
	jobs []Job
}

// NewFileStore creates a new Store backed by the JSON array file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		fl:   flock.New(path + ".lock"),
	}
}

// Load reads the backing file into memory. A missing file initializes an
// empty collection and writes it back. Unreadable or corrupt content is
// logged, the collection resets to empty and a fresh valid file replaces
// the broken one; the prior data is lost.
func (store *FileStore) Load() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}

	if err := store.fl.Lock(); err != nil {
		return fmt.Errorf("cannot lock data file: %w", err)
	}
	defer store.fl.Unlock()

	data, err := os.ReadFile(store.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Str("file", store.path).Msg("data file not found, creating a new one")
		store.jobs = []Job{}
		return store.save()
	}
	if err != nil {
		log.Error().Err(err).Str("file", store.path).Msg("cannot read data file, resetting to empty")
		store.jobs = []Job{}
		return store.save()
	}

	if len(data) == 0 {
		log.Info().Str("file", store.path).Msg("data file is empty, starting with an empty collection")
		store.jobs = []Job{}
		return nil
	}

	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		log.Error().Err(err).Str("file", store.path).Msg("data file is corrupt, resetting to empty")
		store.jobs = []Job{}
		return store.save()
	}

	store.jobs = jobs
	log.Info().Int("jobs", len(jobs)).Str("file", store.path).Msg("loaded jobs")
	return nil
}

// Save persists the current collection.
func (store *FileStore) Save() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.save()
}

// save writes the collection to a temp file and renames it over the data
// file. Callers must hold store.mu.
func (store *FileStore) save() error {
	data, err := json.MarshalIndent(store.jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize jobs: %w", err)
	}

	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cannot write data file: %w", err)
	}
	if err := os.Rename(tmp, store.path); err != nil {
		return fmt.Errorf("cannot replace data file: %w", err)
	}

	log.Debug().Int("jobs", len(store.jobs)).Str("file", store.path).Msg("saved jobs")
	return nil
}

// Append inserts the job at the front of the collection and persists it.
// On a persistence failure the insertion is reverted.
func (store *FileStore) Append(job Job) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.fl.Lock(); err != nil {
		return fmt.Errorf("cannot lock data file: %w", err)
	}
	defer store.fl.Unlock()

	store.jobs = append([]Job{job}, store.jobs...)

	if err := store.save(); err != nil {
		store.jobs = store.jobs[1:]
		return err
	}
	return nil
}

// Remove deletes the job with the given id and persists the collection.
// It returns ErrJobNotFound when the id is absent; on a persistence
// failure the job is restored at its original position.
func (store *FileStore) Remove(id int64) (Job, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	idx := -1
	for i, job := range store.jobs {
		if job.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Job{}, ErrJobNotFound
	}

	if err := store.fl.Lock(); err != nil {
		return Job{}, fmt.Errorf("cannot lock data file: %w", err)
	}
	defer store.fl.Unlock()

	removed := store.jobs[idx]
	store.jobs = append(store.jobs[:idx:idx], store.jobs[idx+1:]...)

	if err := store.save(); err != nil {
		rest := store.jobs[idx:]
		store.jobs = append(store.jobs[:idx:idx], removed)
		store.jobs = append(store.jobs, rest...)
		return Job{}, err
	}
	return removed, nil
}

// Find returns the job with the given id.
func (store *FileStore) Find(id int64) (Job, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, job := range store.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}

// All returns a snapshot of the collection in store order, newest first.
func (store *FileStore) All() []Job {
	store.mu.Lock()
	defer store.mu.Unlock()

	jobs := make([]Job, len(store.jobs))
	copy(jobs, store.jobs)
	return jobs
}

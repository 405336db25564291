// Package gitstore provides a Git plumbing-based implementation of TaskStore.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskbot/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.SaveTimeReporter = (*Store)(nil)
)

// Store implements domain.TaskStore using Git refs and blobs.
//
// Data structure:
//
//	refs/<namespace>/
//	  tasks → blob (records YAML)
//	  meta  → blob (count, savedAt)
//
// Nothing is committed, so the working tree and branches are untouched.
type Store struct {
	repo      *git.Repository
	clock     domain.Clock
	namespace string
	mu        sync.RWMutex
}

// recordsData is the YAML layout of the tasks blob.
type recordsData struct {
	Records []string `yaml:"records"`
}

// Meta describes the last save.
type Meta struct {
	SavedAt time.Time `yaml:"savedAt"`
	Count   int       `yaml:"count"`
}

// New opens the repository at repoPath, creating a bare one if none exists.
func New(repoPath, namespace string, clock domain.Clock) (*Store, error) {
	repo, err := git.PlainOpen(repoPath)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(repoPath, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace, clock), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string, clock domain.Clock) *Store {
	if namespace == "" {
		namespace = domain.DefaultStoreNamespace
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{
		repo:      repo,
		clock:     clock,
		namespace: namespace,
	}
}

// refPrefix returns the ref prefix for this namespace.
func (s *Store) refPrefix() string {
	return "refs/" + s.namespace + "/"
}

// tasksRef returns the ref name for the records blob.
func (s *Store) tasksRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(s.refPrefix() + "tasks")
}

// metaRef returns the ref name for metadata.
func (s *Store) metaRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(s.refPrefix() + "meta")
}

// Load returns the stored records. A namespace that was never written
// has no records.
func (s *Store) Load() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data recordsData
	found, err := s.readRef(s.tasksRef(), &data)
	if err != nil || !found {
		return nil, err
	}
	return data.Records, nil
}

// Save replaces the records blob and updates the meta blob.
func (s *Store) Save(records []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []string{}
	}
	if err := s.writeRef(s.tasksRef(), recordsData{Records: records}); err != nil {
		return err
	}
	return s.writeRef(s.metaRef(), Meta{
		SavedAt: s.clock.Now().UTC(),
		Count:   len(records),
	})
}

// LoadMeta returns the metadata of the last save, or nil if none exists.
func (s *Store) LoadMeta() (*Meta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m Meta
	found, err := s.readRef(s.metaRef(), &m)
	if err != nil || !found {
		return nil, err
	}
	return &m, nil
}

// LastSaved returns the save time recorded in the meta blob.
func (s *Store) LastSaved() (time.Time, error) {
	m, err := s.LoadMeta()
	if err != nil || m == nil {
		return time.Time{}, err
	}
	return m.SavedAt, nil
}

func (s *Store) readRef(name plumbing.ReferenceName, v any) (bool, error) {
	ref, err := s.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get ref %s: %w", name, err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return false, err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) writeRef(name plumbing.ReferenceName, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	hash, err := s.writeBlob(data)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(name, hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set ref %s: %w", name, err)
	}
	return nil
}

// writeBlob writes data to a blob and returns the hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

// readBlob reads the full content of a blob.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}

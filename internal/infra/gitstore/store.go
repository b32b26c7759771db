// Package gitstore provides a Git plumbing-based implementation of domain.KVStore.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v3"

	"github.com/acetasks/ace/internal/domain"
)

// SchemaVersion is recorded in the meta blob on every write.
const SchemaVersion = 1

// Store implements domain.KVStore using Git plumbing (refs and blobs).
//
// Data structure:
//
//	refs/<namespace>/
//	  meta      → blob (schema version, last write, YAML)
//	  kv/
//	    <key>   → blob (raw value)
type Store struct {
	repo      *git.Repository
	now       func() time.Time
	repoPath  string // path to the repository, empty for in-memory repos
	namespace string // e.g., "ace"
	mu        sync.RWMutex
}

// meta contains store metadata.
// Fields are ordered to minimize memory padding.
type meta struct {
	UpdatedAt     time.Time `yaml:"updatedAt"`
	LastKey       string    `yaml:"lastKey"`
	SchemaVersion int       `yaml:"schemaVersion"`
	Writes        int       `yaml:"writes"`
}

// Open opens the repository at repoPath, creating a bare repository if none exists.
func Open(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpen(repoPath)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(repoPath, true)
		if err != nil {
			return nil, fmt.Errorf("init git repository: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	s := NewWithRepo(repo, namespace)
	s.repoPath = repoPath
	return s, nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	if namespace == "" {
		namespace = domain.DefaultNamespace
	}
	return &Store{
		repo:      repo,
		namespace: namespace,
		now:       time.Now,
	}
}

// refPrefix returns the ref prefix for this namespace.
func (s *Store) refPrefix() string {
	return "refs/" + s.namespace + "/"
}

// keyRef returns the ref name for a key.
func (s *Store) keyRef(key string) plumbing.ReferenceName {
	return plumbing.ReferenceName(s.refPrefix() + "kv/" + key)
}

// metaRef returns the ref name for metadata.
func (s *Store) metaRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(s.refPrefix() + "meta")
}

// Get returns the value stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(s.keyRef(key), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get key ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read value: %w", err)
	}
	return data, nil
}

// Set stores value as a blob and points the key's ref at it.
func (s *Store) Set(key string, value []byte) error {
	if key == "" || strings.ContainsAny(key, " ~^:?*[\\") {
		return fmt.Errorf("invalid key %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob(value)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.keyRef(key), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set key ref: %w", err)
	}

	m, err := s.loadMeta()
	if err != nil {
		return err
	}
	m.SchemaVersion = SchemaVersion
	m.UpdatedAt = s.now().UTC()
	m.LastKey = key
	m.Writes++
	return s.saveMeta(m)
}

// Keys returns all keys stored in this namespace.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs, err := s.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}

	prefix := s.refPrefix() + "kv/"
	var keys []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if strings.HasPrefix(name, prefix) {
			keys = append(keys, strings.TrimPrefix(name, prefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Meta returns the recorded schema version, write count and last write time.
func (s *Store) Meta() (version, writes int, updatedAt time.Time, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, err := s.loadMeta()
	if err != nil {
		return 0, 0, time.Time{}, err
	}
	return m.SchemaVersion, m.Writes, m.UpdatedAt, nil
}

// Close releases nothing; go-git keeps no open handles between calls.
func (s *Store) Close() error {
	return nil
}

// loadMeta loads metadata from the meta ref.
// A missing meta ref yields a zero meta.
func (s *Store) loadMeta() (*meta, error) {
	ref, err := s.repo.Reference(s.metaRef(), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return &meta{}, nil
		}
		return nil, fmt.Errorf("get meta ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read meta: %w", err)
	}

	var m meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode meta: %w", err)
	}

	return &m, nil
}

// saveMeta saves metadata to the meta ref.
func (s *Store) saveMeta(m *meta) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	hash, err := s.writeBlob(data)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.metaRef(), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set meta ref: %w", err)
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

// readBlob reads the full contents of a blob.
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

// Ensure Store implements domain.KVStore and domain.KeyLister.
var (
	_ domain.KVStore   = (*Store)(nil)
	_ domain.KeyLister = (*Store)(nil)
)

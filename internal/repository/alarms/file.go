package alarms

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/metrics"
)

var (
	// ErrNotFound is returned when no record exists for the id.
	ErrNotFound = errors.New("alarm not found")
	// ErrClosed is returned by mutations issued after Close.
	ErrClosed = errors.New("alarm store is closed")
)

// FileStore persists alarm definitions to a YAML file.
//
// Mutations only touch the in-memory document and bump a revision counter.
// A single writer goroutine flushes the latest snapshot, so writes land on
// disk in revision order and a later write for an id always wins.
type FileStore struct {
	// path is the filesystem location of the YAML document.
	path string

	// mu guards every field below.
	mu sync.Mutex
	// doc is the authoritative in-memory document.
	doc *document
	// revision counts mutations since Open.
	revision uint64
	// stored is the highest revision written successfully.
	stored uint64
	// waiters are AwaitStored calls blocked on a revision.
	waiters []waiter
	// closed rejects mutations after Close.
	closed bool

	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

type waiter struct {
	revision uint64
	result   chan error
}

// Open loads the document at path (a missing file yields an empty store) and
// starts the background writer. Version 1 documents are upgraded in memory and
// rewritten on the first flush.
func Open(ctx context.Context, path string) (*FileStore, error) {
	doc, upgraded, err := load(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	s := &FileStore{
		path: filepath.Clean(path),
		doc:  doc,
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	if upgraded {
		logger.InfoKV(ctx, "Upgraded alarm store layout", "path", s.path, "version", currentVersion)
		s.revision++
		s.signal()
	}

	go s.run()

	return s, nil
}

func load(path string) (*document, bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newDocument(), false, nil
		}

		return nil, false, fmt.Errorf("read alarm store: %w", err)
	}

	var header struct {
		Version int `yaml:"version"`
	}
	if err = yaml.Unmarshal(contents, &header); err != nil {
		return nil, false, fmt.Errorf("decode alarm store: %w", err)
	}

	if header.Version < currentVersion {
		var old legacyDocument
		if err = yaml.Unmarshal(contents, &old); err != nil {
			return nil, false, fmt.Errorf("decode alarm store v%d: %w", header.Version, err)
		}

		return upgrade(&old), true, nil
	}

	if header.Version > currentVersion {
		return nil, false, fmt.Errorf("alarm store version %d is newer than supported %d", header.Version, currentVersion)
	}

	doc := newDocument()
	if err = yaml.Unmarshal(contents, doc); err != nil {
		return nil, false, fmt.Errorf("decode alarm store: %w", err)
	}

	if doc.Alarms == nil {
		doc.Alarms = make(map[domain.ID]*record)
	}

	for id, r := range doc.Alarms {
		r.ID = id
		if int(id) >= doc.NextID {
			doc.NextID = int(id) + 1
		}
	}

	return doc, false, nil
}

// Create allocates a fresh id and stores a disabled definition for it.
// Ids are never reused, even after deletion.
func (s *FileStore) Create(_ context.Context) (domain.Definition, error) {
	var def domain.Definition

	err := s.mutate(func(doc *document) error {
		def = domain.New(domain.ID(doc.NextID))
		doc.NextID++
		doc.Alarms[def.ID] = toRecord(def)

		return nil
	})

	return def, err
}

// Query returns every stored definition ordered by id.
func (s *FileStore) Query(_ context.Context) ([]domain.Definition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defs := make([]domain.Definition, 0, len(s.doc.Alarms))
	for _, r := range s.doc.Alarms {
		defs = append(defs, fromRecord(r))
	}

	slices.SortFunc(defs, func(a, b domain.Definition) int {
		return int(a.ID) - int(b.ID)
	})

	return defs, nil
}

// Modify replaces the record for id with the result of f applied to the current value.
// The id of the result is forced back to id.
func (s *FileStore) Modify(
	_ context.Context,
	id domain.ID,
	f func(domain.Definition) (domain.Definition, error),
) (domain.Definition, error) {
	var def domain.Definition

	err := s.mutate(func(doc *document) error {
		current, ok := doc.Alarms[id]
		if !ok {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}

		next, err := f(fromRecord(current))
		if err != nil {
			return err
		}

		next.ID = id
		doc.Alarms[id] = toRecord(next)
		def = next

		return nil
	})

	return def, err
}

// Delete removes the record for id.
func (s *FileStore) Delete(_ context.Context, id domain.ID) error {
	return s.mutate(func(doc *document) error {
		if _, ok := doc.Alarms[id]; !ok {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}

		delete(doc.Alarms, id)

		return nil
	})
}

// Initialized reports whether the legacy migration already ran.
func (s *FileStore) Initialized(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Initialized, nil
}

// SetInitialized records that the legacy migration ran.
func (s *FileStore) SetInitialized(_ context.Context) error {
	return s.mutate(func(doc *document) error {
		doc.Initialized = true

		return nil
	})
}

// AwaitStored blocks until every mutation made before the call is on disk.
// It returns the error of the write covering those mutations, if any.
func (s *FileStore) AwaitStored(ctx context.Context) error {
	s.mu.Lock()

	target := s.revision
	if s.stored >= target {
		s.mu.Unlock()

		return nil
	}

	w := waiter{
		revision: target,
		result:   make(chan error, 1),
	}
	s.waiters = append(s.waiters, w)
	s.mu.Unlock()

	// A failed write is only retried on demand, so nudge the writer.
	s.signal()

	select {
	case err := <-w.result:
		return err
	case <-ctx.Done():
		return fmt.Errorf("await alarm store: %w", ctx.Err())
	}
}

// Close flushes pending mutations and stops the writer.
func (s *FileStore) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	err := s.AwaitStored(ctx)

	s.stopOnce.Do(func() {
		close(s.stop)
	})

	select {
	case <-s.done:
	case <-ctx.Done():
		if err == nil {
			err = fmt.Errorf("close alarm store: %w", ctx.Err())
		}
	}

	return err
}

func (s *FileStore) mutate(f func(*document) error) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()

		return ErrClosed
	}

	if err := f(s.doc); err != nil {
		s.mu.Unlock()

		return err
	}

	s.revision++
	s.mu.Unlock()

	s.signal()

	return nil
}

func (s *FileStore) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *FileStore) run() {
	defer close(s.done)

	for {
		select {
		case <-s.wake:
			s.flush()
		case <-s.stop:
			s.flush()

			return
		}
	}
}

// flush writes the latest snapshot if anything changed since the last successful write.
func (s *FileStore) flush() {
	s.mu.Lock()

	if s.stored >= s.revision {
		s.mu.Unlock()

		return
	}

	var (
		snapshot = s.doc.clone()
		revision = s.revision
	)

	s.mu.Unlock()

	startedAt := time.Now()
	err := s.write(snapshot)
	metrics.ObserveStoreWrite(err, time.Since(startedAt))

	if err != nil {
		logger.ErrorKV(context.Background(), "Failed to write alarm store", "path", s.path, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		s.stored = revision
	}

	remaining := s.waiters[:0]

	for _, w := range s.waiters {
		if err != nil || w.revision <= revision {
			w.result <- err

			continue
		}

		remaining = append(remaining, w)
	}

	s.waiters = remaining
}

// write replaces the file atomically: temp file in the same directory, then rename.
func (s *FileStore) write(doc *document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode alarm store: %w", err)
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp alarm store: %w", err)
	}

	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("write temp alarm store: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("sync temp alarm store: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp alarm store: %w", err)
	}

	if err = os.Chmod(tmpName, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("chmod temp alarm store: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace alarm store: %w", err)
	}

	return nil
}

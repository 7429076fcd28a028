package alarms

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/repository/legacy"
)

var errSchedulerDown = errors.New("scheduler is down")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

func (f *fakeClock) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
}

// fakeScheduler records registrations and counts arms that found one still live.
type fakeScheduler struct {
	mu         sync.Mutex
	entries    map[domain.ID]time.Time
	arms       int
	doubleArms int
	fail       bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{entries: make(map[domain.ID]time.Time)}
}

func (f *fakeScheduler) Arm(id domain.ID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return errSchedulerDown
	}

	if _, ok := f.entries[id]; ok {
		f.doubleArms++
	}

	f.entries[id] = at
	f.arms++

	return nil
}

func (f *fakeScheduler) Cancel(id domain.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.entries, id)

	return nil
}

// consume mimics the scheduler delivering the registration.
func (f *fakeScheduler) consume(id domain.ID) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	at, ok := f.entries[id]
	delete(f.entries, id)

	return at, ok
}

func (f *fakeScheduler) armedAt(id domain.ID) (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	at, ok := f.entries[id]

	return at, ok
}

func (f *fakeScheduler) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fail = fail
}

func (f *fakeScheduler) stats() (live, doubleArms int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.entries), f.doubleArms
}

type notification struct {
	id   domain.ID
	kind domain.EventKind
}

type fakeNotifier struct {
	mu    sync.Mutex
	items []notification
}

func (f *fakeNotifier) Notify(_ context.Context, id domain.ID, kind domain.EventKind) {
	_ = kind.String()

	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, notification{id: id, kind: kind})
}

func (f *fakeNotifier) kinds() []domain.EventKind {
	f.mu.Lock()
	defer f.mu.Unlock()

	kinds := make([]domain.EventKind, 0, len(f.items))
	for _, item := range f.items {
		kinds = append(kinds, item.kind)
	}

	return kinds
}

// memStore is an in-memory Store.
type memStore struct {
	mu          sync.Mutex
	nextID      domain.ID
	defs        map[domain.ID]domain.Definition
	initialized bool
}

func newMemStore() *memStore {
	return &memStore{nextID: 1, defs: make(map[domain.ID]domain.Definition)}
}

func (m *memStore) Create(_ context.Context) (domain.Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	def := domain.New(m.nextID)
	m.nextID++
	m.defs[def.ID] = def

	return def, nil
}

func (m *memStore) Query(_ context.Context) ([]domain.Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	defs := make([]domain.Definition, 0, len(m.defs))
	for _, def := range m.defs {
		defs = append(defs, def)
	}

	slices.SortFunc(defs, func(a, b domain.Definition) int { return int(a.ID) - int(b.ID) })

	return defs, nil
}

func (m *memStore) Modify(
	_ context.Context,
	id domain.ID,
	f func(domain.Definition) (domain.Definition, error),
) (domain.Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.defs[id]
	if !ok {
		return domain.Definition{}, fmt.Errorf("store: %d missing", id)
	}

	next, err := f(current)
	if err != nil {
		return domain.Definition{}, err
	}

	next.ID = id
	m.defs[id] = next

	return next, nil
}

func (m *memStore) Delete(_ context.Context, id domain.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.defs, id)

	return nil
}

func (m *memStore) Initialized(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.initialized, nil
}

func (m *memStore) SetInitialized(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.initialized = true

	return nil
}

func (m *memStore) AwaitStored(_ context.Context) error {
	return nil
}

func (m *memStore) get(id domain.ID) (domain.Definition, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	def, ok := m.defs[id]

	return def, ok
}

func (m *memStore) put(def domain.Definition) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.defs[def.ID] = def
	if def.ID >= m.nextID {
		m.nextID = def.ID + 1
	}
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.defs)
}

type fakeLegacy struct {
	mu   sync.Mutex
	rows []legacy.Row
}

func (f *fakeLegacy) Query(_ context.Context) ([]legacy.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.rows), nil
}

func (f *fakeLegacy) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rows = slices.DeleteFunc(f.rows, func(row legacy.Row) bool { return row.ID == id })

	return nil
}

func (f *fakeLegacy) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.rows)
}

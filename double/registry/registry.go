package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jakob-rzeppa/fnmock/double"
)

// ErrWrongDoubleKind is returned when a function name is already bound to a
// double of a different kind or type parameterization.
var ErrWrongDoubleKind = errors.New("function name is already bound to a different double kind")

// Store owns every double of one execution context, keyed by function name.
//
// A Store must only ever be used from the context it was created for: its
// operations are deliberately unsynchronized because double state never
// crosses context boundaries.
type Store struct {
	id      uuid.UUID
	doubles map[string]any
}

// NewStore creates an empty Store with a unique ID for diagnostic purposes.
func NewStore() *Store {
	return &Store{
		id:      uuid.Must(uuid.NewV7()),
		doubles: make(map[string]any),
	}
}

// ID returns the unique ID of this store.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Size returns the number of doubles currently held by this store.
func (s *Store) Size() int {
	return len(s.doubles)
}

// clearable is what Clear needs from each stored double.
type clearable interface {
	Clear()
}

// Clear resets every double in the store to its freshly constructed state.
// This is the hook a test harness calls between test cases; the runtime
// itself never resets anything automatically.
func (s *Store) Clear() {
	for _, d := range s.doubles {
		if c, ok := d.(clearable); ok {
			c.Clear()
		}
	}
}

// MockFor returns the FunctionMock registered under functionName, creating it
// lazily on first access. Options only take effect on creation.
func MockFor[P any, R any](store *Store, functionName string, options ...double.Option) (*double.FunctionMock[P, R], error) {
	if existing, ok := store.doubles[functionName]; ok {
		mock, isMock := existing.(*double.FunctionMock[P, R])
		if !isMock {
			return nil, fmt.Errorf("%w: %s", ErrWrongDoubleKind, functionName)
		}

		return mock, nil
	}

	mock, err := double.NewFunctionMock[P, R](functionName, options...)
	if err != nil {
		return nil, err
	}

	store.doubles[functionName] = mock

	return mock, nil
}

// FakeFor returns the FunctionFake registered under functionName, creating it
// lazily on first access. Options only take effect on creation.
func FakeFor[F any](store *Store, functionName string, options ...double.Option) (*double.FunctionFake[F], error) {
	if existing, ok := store.doubles[functionName]; ok {
		fake, isFake := existing.(*double.FunctionFake[F])
		if !isFake {
			return nil, fmt.Errorf("%w: %s", ErrWrongDoubleKind, functionName)
		}

		return fake, nil
	}

	fake, err := double.NewFunctionFake[F](functionName, options...)
	if err != nil {
		return nil, err
	}

	store.doubles[functionName] = fake

	return fake, nil
}

// StubFor returns the FunctionStub registered under functionName, creating it
// lazily on first access. Options only take effect on creation.
func StubFor[R any](store *Store, functionName string, options ...double.Option) (*double.FunctionStub[R], error) {
	if existing, ok := store.doubles[functionName]; ok {
		stub, isStub := existing.(*double.FunctionStub[R])
		if !isStub {
			return nil, fmt.Errorf("%w: %s", ErrWrongDoubleKind, functionName)
		}

		return stub, nil
	}

	stub, err := double.NewFunctionStub[R](functionName, options...)
	if err != nil {
		return nil, err
	}

	store.doubles[functionName] = stub

	return stub, nil
}

// StubWithCloneFor is StubFor for stubs that need an explicit clone function.
func StubWithCloneFor[R any](store *Store, functionName string, clone func(R) R, options ...double.Option) (*double.FunctionStub[R], error) {
	if existing, ok := store.doubles[functionName]; ok {
		stub, isStub := existing.(*double.FunctionStub[R])
		if !isStub {
			return nil, fmt.Errorf("%w: %s", ErrWrongDoubleKind, functionName)
		}

		return stub, nil
	}

	stub, err := double.NewFunctionStubWithClone[R](functionName, clone, options...)
	if err != nil {
		return nil, err
	}

	store.doubles[functionName] = stub

	return stub, nil
}

// Registry maps execution-context keys to their stores, creating stores
// lazily on first access.
//
// Only store creation is guarded by the mutex: different contexts may ask for
// their stores concurrently, but each Store handed out is owned exclusively
// by the context it was requested for.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[string]*Store),
	}
}

// Context returns the Store for the given context key, creating it on first
// access. Callers choose the key granularity: one per test name, one per
// worker, one per goroutine.
func (r *Registry) Context(key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[key]
	if !ok {
		store = NewStore()
		r.stores[key] = store
	}

	return store
}

// Drop discards the store of the given context key, if any.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.stores, key)
}

package recording

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/replay/internal/logging"
)

// ErrUnknownExecutor is returned by NewExecutor for unregistered names.
var ErrUnknownExecutor = errors.New("recording: unknown executor")

// ExecutorFactory creates an executor. widths resolves DrawChars width
// requests and may be nil.
type ExecutorFactory func(widths Widther) Executor

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	executors  = make(map[string]ExecutorFactory)
)

// Register registers an executor factory with the given name.
// This function is typically called from init() in executor packages.
//
// Register panics if factory is nil or if the name is already taken.
func Register(name string, factory ExecutorFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := executors[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	executors[name] = factory
}

// Unregister removes an executor from the registry.
// If the executor is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(executors, name)
}

// NewExecutor creates an executor by name.
func NewExecutor(name string, widths Widther) (Executor, error) {
	registryMu.RLock()
	factory, ok := executors[name]
	registryMu.RUnlock()

	if !ok {
		logging.Logger().Warn("recording: unknown executor", "name", name)
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownExecutor, name)
	}
	return factory(widths), nil
}

// MustExecutor is NewExecutor that panics on error.
func MustExecutor(name string, widths Widther) Executor {
	e, err := NewExecutor(name, widths)
	if err != nil {
		panic(err)
	}
	return e
}

// Executors returns the registered executor names, sorted.
func Executors() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(executors))
	for name := range executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an executor with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := executors[name]
	return ok
}

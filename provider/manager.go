package provider

import (
	"context"
	goerrors "errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/kbukum/wonderwords/logger"
)

// Manager owns the initialized providers and asks its Selector for one on
// every Get.
type Manager[T Provider] struct {
	registry *Registry[T]
	selector Selector[T]
	log      *logger.Logger

	mu        sync.RWMutex
	providers map[string]T
}

// NewManager creates a Manager. A nil logger falls back to the "provider"
// entry of the logger registry.
func NewManager[T Provider](registry *Registry[T], selector Selector[T], log *logger.Logger) *Manager[T] {
	if log == nil {
		log = logger.Get("provider")
	}
	return &Manager[T]{
		registry:  registry,
		selector:  selector,
		log:       log,
		providers: make(map[string]T),
	}
}

// Register adds a factory to the registry.
func (m *Manager[T]) Register(name string, factory Factory[T]) {
	m.registry.Register(name, factory)
}

// Initialize builds the named provider and makes it selectable.
func (m *Manager[T]) Initialize(name string) error {
	p, err := m.registry.Create(name)
	if err != nil {
		return fmt.Errorf("initialize provider %q: %w", name, err)
	}
	m.mu.Lock()
	m.providers[name] = p
	m.mu.Unlock()
	m.log.Info("provider initialized", logger.Fields(logger.FieldProvider, name))
	return nil
}

// Get returns the provider chosen by the selector.
func (m *Manager[T]) Get(ctx context.Context) (T, error) {
	return m.selector.Select(ctx, m.snapshot())
}

// Available returns the names of the initialized providers, sorted.
func (m *Manager[T]) Available() []string {
	return slices.Sorted(maps.Keys(m.snapshot()))
}

// Close closes every initialized provider that implements Closeable and
// joins their errors.
func (m *Manager[T]) Close(ctx context.Context) error {
	var errs []error
	for name, p := range m.snapshot() {
		c, ok := any(p).(Closeable)
		if !ok {
			continue
		}
		if err := c.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close provider %q: %w", name, err))
		}
	}
	return goerrors.Join(errs...)
}

func (m *Manager[T]) snapshot() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.providers)
}

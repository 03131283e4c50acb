package provider

import (
	"context"
	"fmt"
)

// Selector chooses one of the initialized providers for a call.
type Selector[T Provider] interface {
	Select(ctx context.Context, providers map[string]T) (T, error)
}

// PrioritySelector picks the first provider in Priority that is initialized
// and reports itself available. Names missing from the map are skipped.
type PrioritySelector[T Provider] struct {
	Priority []string
}

func (s *PrioritySelector[T]) Select(ctx context.Context, providers map[string]T) (T, error) {
	var skipped []string
	for _, name := range s.Priority {
		p, ok := providers[name]
		if !ok {
			continue
		}
		if p.IsAvailable(ctx) {
			return p, nil
		}
		skipped = append(skipped, name)
	}
	var zero T
	if len(skipped) == 0 {
		return zero, fmt.Errorf("none of %v is initialized", s.Priority)
	}
	return zero, fmt.Errorf("no provider available (unavailable: %v)", skipped)
}

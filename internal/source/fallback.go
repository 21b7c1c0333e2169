package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/internal/log"
)

// FallbackSource tries a primary source and, when it fails for any reason
// other than cancellation, loads from the fallback instead. Describe reports
// which of the two actually supplied the values.
type FallbackSource struct {
	primary  Source
	fallback Source

	mu     sync.Mutex
	origin string
}

func WithFallback(primary, fallback Source) *FallbackSource {
	return &FallbackSource{primary: primary, fallback: fallback}
}

func (s *FallbackSource) Load(ctx context.Context) (assumptions.Set, error) {
	set, err := s.primary.Load(ctx)
	if err == nil {
		s.setOrigin(s.primary.Describe())
		return set, nil
	}
	if ctx.Err() != nil {
		return assumptions.Set{}, err
	}

	logger := log.WithComponent("source")
	logger.Warn().
		Err(err).
		Str("fallback", s.fallback.Describe()).
		Msg("primary assumptions source failed, using fallback")

	set, ferr := s.fallback.Load(ctx)
	if ferr != nil {
		return assumptions.Set{}, ferr
	}
	s.setOrigin(fmt.Sprintf("%s (%s unavailable)", s.fallback.Describe(), s.primary.Describe()))
	return set, nil
}

func (s *FallbackSource) Describe() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.origin != "" {
		return s.origin
	}
	return s.primary.Describe()
}

func (s *FallbackSource) setOrigin(origin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.origin = origin
}

package app

import (
	"context"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
)

// Source supplies the effective assumption set and a provenance label.
type Source interface {
	Load(ctx context.Context) (assumptions.Set, error)
	Describe() string
}

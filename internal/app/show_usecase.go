package app

import (
	"context"
	"fmt"
)

// ShowAssumptions returns the effective assumption values and their origin.
func (a *App) ShowAssumptions(ctx context.Context) (ShowOutput, error) {
	if a == nil || a.source == nil {
		return ShowOutput{}, fmt.Errorf("%w: assumptions source is not configured", ErrSource)
	}

	set, err := a.source.Load(ctx)
	if err != nil {
		return ShowOutput{}, wrapSourceError(err)
	}
	if err := validateAssumptionSet(set); err != nil {
		return ShowOutput{}, err
	}

	return ShowOutput{Set: set, Origin: a.source.Describe()}, nil
}

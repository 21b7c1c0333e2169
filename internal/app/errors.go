package app

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInput  = errors.New("input error")
	ErrSource = errors.New("source error")
	ErrAudit  = errors.New("audit failed")
)

func wrapSourceError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInput) ||
		errors.Is(err, ErrSource) ||
		errors.Is(err, ErrAudit) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrSource, err)
}

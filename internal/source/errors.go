package source

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindNotFound ErrorKind = "not_found"
	ErrorKindRead     ErrorKind = "read"
	ErrorKindCanceled ErrorKind = "canceled"
)

// Error describes a failure to obtain assumptions from a source.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "source error"
	}

	base := fmt.Sprintf("assumptions source %s error", e.Kind)
	if e.Path != "" {
		base = fmt.Sprintf("%s for %s", base, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", base, e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewError(kind ErrorKind, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

func IsKind(err error, kind ErrorKind) bool {
	var srcErr *Error
	if errors.As(err, &srcErr) {
		return srcErr.Kind == kind
	}
	return false
}

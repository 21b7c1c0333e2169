package errors

import (
	stderrors "errors"
	"fmt"
)

// ExitError 给错误附加进程退出码；码值定义见 codes.go。
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New attaches an exit code to err. A nil err stays nil so call sites can
// wrap unconditionally.
func New(err error, code int) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// Newf builds a coded error from a format string.
func Newf(code int, format string, args ...any) error {
	return New(fmt.Errorf(format, args...), code)
}

// GetCode 返回错误携带的退出码；nil 为 Success，未标记的错误按 InputError 处理。
func GetCode(err error) int {
	if err == nil {
		return Success
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return InputError
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewNilReturnsNil(t *testing.T) {
	if err := New(nil, SourceError); err != nil {
		t.Fatalf("New(nil, code) = %v, expected nil", err)
	}
}

func TestNewWrapsAndPreservesCode(t *testing.T) {
	base := stderrors.New("assumptions file unreadable")
	err := New(base, SourceError)
	if err == nil {
		t.Fatalf("New() returned nil")
	}

	if code := GetCode(err); code != SourceError {
		t.Fatalf("GetCode(New(...)) = %d, expected %d", code, SourceError)
	}

	if !stderrors.Is(err, base) {
		t.Fatalf("wrapped error should match base error")
	}
}

func TestNewfAndDefaultGetCode(t *testing.T) {
	err := Newf(AuditFailed, "audit failed (%d error(s))", 3)
	if err == nil {
		t.Fatalf("Newf() returned nil")
	}
	if got := err.Error(); got != "audit failed (3 error(s))" {
		t.Fatalf("Newf().Error() = %q, expected %q", got, "audit failed (3 error(s))")
	}
	if code := GetCode(err); code != AuditFailed {
		t.Fatalf("GetCode(Newf(...)) = %d, expected %d", code, AuditFailed)
	}

	plain := stderrors.New("plain error")
	if code := GetCode(plain); code != InputError {
		t.Fatalf("GetCode(plain error) = %d, expected %d", code, InputError)
	}
}

func TestCodedErrorKeepsSentinelChain(t *testing.T) {
	// 与 cmd.mapAppError 的用法一致：先 %w 包哨兵错误，再附加退出码。
	sentinel := stderrors.New("audit failed")
	err := New(fmt.Errorf("%w: 3 error(s)", sentinel), AuditFailed)
	if !stderrors.Is(err, sentinel) {
		t.Fatalf("coded error should still match the wrapped sentinel")
	}
	if code := GetCode(err); code != AuditFailed {
		t.Fatalf("GetCode() = %d, expected %d", code, AuditFailed)
	}
}

func TestGetCodeNilIsSuccess(t *testing.T) {
	if code := GetCode(nil); code != Success {
		t.Fatalf("GetCode(nil) = %d, expected %d", code, Success)
	}
}

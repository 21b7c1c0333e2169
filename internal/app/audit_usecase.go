package app

import (
	"context"
	"fmt"
	"os"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
)

// AuditDocument 读取假设文档并返回结构化审计报告。
// 报告不通过不算用例错误，由调用方决定退出码。
func (a *App) AuditDocument(ctx context.Context, in AuditInput) (AuditOutput, error) {
	if in.Path == "" {
		return AuditOutput{}, fmt.Errorf("%w: assumptions path is required", ErrInput)
	}
	if err := ctx.Err(); err != nil {
		return AuditOutput{}, err
	}

	content, err := os.ReadFile(in.Path)
	if err != nil {
		return AuditOutput{}, fmt.Errorf("%w: reading %s: %v", ErrSource, in.Path, err)
	}

	return AuditOutput{
		Path:   in.Path,
		Report: assumptions.Audit(content),
	}, nil
}

package source

import (
	"context"
	"os"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
)

// Source yields an effective assumption set plus a human-readable origin
// label for reports and logs.
type Source interface {
	Load(ctx context.Context) (assumptions.Set, error)
	Describe() string
}

// FileSource reads and parses a markdown assumptions document.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Load(ctx context.Context) (assumptions.Set, error) {
	if err := ctx.Err(); err != nil {
		return assumptions.Set{}, NewError(ErrorKindCanceled, s.Path, err)
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		kind := ErrorKindRead
		if os.IsNotExist(err) {
			kind = ErrorKindNotFound
		}
		return assumptions.Set{}, NewError(kind, s.Path, err)
	}

	return assumptions.Parse(content), nil
}

func (s *FileSource) Describe() string {
	return s.Path
}

// StaticSource returns a fixed set, typically the compiled defaults.
type StaticSource struct {
	Set   assumptions.Set
	Label string
}

func NewStaticSource(set assumptions.Set, label string) *StaticSource {
	return &StaticSource{Set: set, Label: label}
}

func (s *StaticSource) Load(ctx context.Context) (assumptions.Set, error) {
	if err := ctx.Err(); err != nil {
		return assumptions.Set{}, NewError(ErrorKindCanceled, "", err)
	}
	return s.Set, nil
}

func (s *StaticSource) Describe() string {
	return s.Label
}

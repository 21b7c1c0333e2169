package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ASSUMPTIONS.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceLoadsDocumentValues(t *testing.T) {
	path := writeDoc(t, "yield `200 kWh/m²/year` and density `1,500 trees/hectare`\n")
	src := NewFileSource(path)

	set, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 200, set.SolarYieldKWhPerM2Year, 1e-9)
	assert.InDelta(t, 1500, set.PlantingDensityTreesPerHa, 1e-9)
	assert.InDelta(t, assumptions.Defaults().SequestrationKgPerTreeYear, set.SequestrationKgPerTreeYear, 1e-9)
	assert.Equal(t, path, src.Describe())
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.md"))

	_, err := src.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindNotFound), "expected not_found kind, got %v", err)
}

func TestFileSourceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewFileSource("irrelevant.md")
	_, err := src.Load(ctx)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindCanceled), "expected canceled kind, got %v", err)
}

func TestStaticSourceReturnsFixedSet(t *testing.T) {
	src := NewStaticSource(assumptions.Defaults(), "built-in defaults")

	set, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, assumptions.Defaults(), set)
	assert.Equal(t, "built-in defaults", src.Describe())
}

func TestFallbackUsesPrimaryWhenAvailable(t *testing.T) {
	path := writeDoc(t, "`200 kWh/m²/year`\n")
	src := WithFallback(NewFileSource(path), NewStaticSource(assumptions.Defaults(), "built-in defaults"))

	set, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 200, set.SolarYieldKWhPerM2Year, 1e-9)
	assert.Equal(t, path, src.Describe())
}

func TestFallbackRecoversFromMissingPrimary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.md")
	src := WithFallback(NewFileSource(missing), NewStaticSource(assumptions.Defaults(), "built-in defaults"))

	set, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, assumptions.Defaults(), set)
	assert.Contains(t, src.Describe(), "built-in defaults")
	assert.Contains(t, src.Describe(), "unavailable")
}

func TestFallbackDoesNotMaskCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := WithFallback(NewFileSource("irrelevant.md"), NewStaticSource(assumptions.Defaults(), "built-in defaults"))
	_, err := src.Load(ctx)
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorKindCanceled), "expected canceled kind, got %v", err)
}

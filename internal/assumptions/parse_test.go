package assumptions

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseCanonicalRoundTrip(t *testing.T) {
	got := Parse(Render(Canonical()))
	if diff := cmp.Diff(Defaults(), got); diff != "" {
		t.Fatalf("parsed set mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReadsBacktickedValues(t *testing.T) {
	content := []byte("yield `200 kWh/m²/year`, rate `25 kg CO₂/tree/year`, density `1,500 trees/hectare`")
	got := Parse(content)
	assert.InDelta(t, 200, got.SolarYieldKWhPerM2Year, 1e-9)
	assert.InDelta(t, 25, got.SequestrationKgPerTreeYear, 1e-9)
	assert.InDelta(t, 1500, got.PlantingDensityTreesPerHa, 1e-9)
}

func TestParseKeepsDefaultForMissingValue(t *testing.T) {
	content := []byte("only `200 kWh/m²/year` here")
	got := Parse(content)
	assert.InDelta(t, 200, got.SolarYieldKWhPerM2Year, 1e-9)
	assert.InDelta(t, Defaults().SequestrationKgPerTreeYear, got.SequestrationKgPerTreeYear, 1e-9)
	assert.InDelta(t, Defaults().PlantingDensityTreesPerHa, got.PlantingDensityTreesPerHa, 1e-9)
}

func TestParseEmptyContentIsDefaults(t *testing.T) {
	got := Parse(nil)
	if diff := cmp.Diff(Defaults(), got); diff != "" {
		t.Fatalf("parsed set mismatch (-want +got):\n%s", diff)
	}
}

func TestParseValueGrammarIsIntegerOnly(t *testing.T) {
	// Decimals do not match the value grammar; the default stays in place
	// and the audit is what reports the section as unreadable.
	content := []byte("`22.5 kg CO₂/tree/year`")
	got := Parse(content)
	assert.InDelta(t, Defaults().SequestrationKgPerTreeYear, got.SequestrationKgPerTreeYear, 1e-9)
}

func TestParseRequiresBackticks(t *testing.T) {
	content := []byte("bare 200 kWh/m²/year without backticks")
	got := Parse(content)
	assert.InDelta(t, Defaults().SolarYieldKWhPerM2Year, got.SolarYieldKWhPerM2Year, 1e-9)
}

func TestTreesPerM2IsDerived(t *testing.T) {
	set := Set{PlantingDensityTreesPerHa: 1000}
	assert.InDelta(t, 0.1, set.TreesPerM2(), 1e-9)
}

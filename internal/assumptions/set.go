package assumptions

import "github.com/chenzhuyu2004/solarforest/pkg"

// Keys name the tunable assumptions, in document order.
const (
	KeySolarYield    = "solar_yield"
	KeySequestration = "sequestration_rate"
	KeyDensity       = "planting_density"
)

// Unit strings exactly as they appear next to values in the document.
// The parser anchors on these spellings.
const (
	UnitSolarYield    = "kWh/m²/year"
	UnitSequestration = "kg CO₂/tree/year"
	UnitDensity       = "trees/hectare"
)

// Set holds the effective numeric assumptions the calculator runs on.
type Set struct {
	SolarYieldKWhPerM2Year     float64
	SequestrationKgPerTreeYear float64
	PlantingDensityTreesPerHa  float64
}

// Defaults returns the compiled-in baseline values.
func Defaults() Set {
	return Set{
		SolarYieldKWhPerM2Year:     pkg.SolarYieldKWhPerM2Year,
		SequestrationKgPerTreeYear: pkg.SequestrationKgPerTreeYear,
		PlantingDensityTreesPerHa:  pkg.PlantingDensityTreesPerHa,
	}
}

// TreesPerM2 返回每平方米的种植密度，始终由每公顷值推导。
func (s Set) TreesPerM2() float64 {
	return s.PlantingDensityTreesPerHa / pkg.M2PerHectare
}

package pkg

// Baseline assumption values for the land-use comparison. ASSUMPTIONS.md is
// the canonical record of these numbers; the values here are the compiled-in
// defaults used when the document is missing or a value does not parse.
const (
	// SolarYieldKWhPerM2Year is annual electricity from solar panels per
	// square metre of land, with panel efficiency, inverter and wiring
	// losses, and weather already included.
	//
	// Derivation for a mid-latitude site:
	//   - specific yield: ~1,200 kWh per kWp per year (Global Solar Atlas)
	//   - land power density: ~0.15 kWp per m² of array area
	//   - 1,200 × 0.15 = 180 kWh/m²/year
	//
	// Sources: Global Solar Atlas; Fraunhofer ISE Photovoltaics Report.
	SolarYieldKWhPerM2Year = 180.0

	// SequestrationKgPerTreeYear is the CO₂ a tree removes per year,
	// averaged over a young, actively growing mixed temperate stand.
	// Mature trees absorb more, seedlings less.
	//
	// Sources: European Environment Agency forest factsheets; FAO Global
	// Forest Resources Assessment.
	SequestrationKgPerTreeYear = 22.0

	// PlantingDensityTreesPerHa is a typical afforestation planting
	// density. This is a design choice rather than a measurement: common
	// broadleaf and conifer schemes plant 1,000-2,500 stems per hectare
	// and thin the stand over time.
	//
	// Source: UK Forestry Commission woodland creation guidance.
	PlantingDensityTreesPerHa = 1000.0
)

// Unit conversions. Definitional and fixed: never parsed from a document
// and never overridable by profile, flag, or environment.
const (
	M2PerHectare = 10000.0
	KgPerTonne   = 1000.0
)

// Equivalence factors for the report's fun-fact lines.
const (
	// HouseholdYearKWh is the annual electricity consumption of an average
	// EU household. Source: Eurostat household energy statistics.
	HouseholdYearKWh = 3500.0

	// CarYearKgCO2 is the annual CO₂ emitted by a typical passenger car.
	// Source: US EPA, greenhouse gas emissions from a typical vehicle.
	CarYearKgCO2 = 4600.0
)

// JSONSchemaVersion tags every JSON payload the CLI emits.
const JSONSchemaVersion = "1.0"

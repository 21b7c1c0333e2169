package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/chenzhuyu2004/solarforest/internal/app"
	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/pkg"
)

const divider = "-----------------------------------"

type displayUnit struct {
	Symbol   string
	Multiple float64
}

var commonEnergyUnits = []displayUnit{
	{Symbol: "TWh", Multiple: 1e-9},
	{Symbol: "GWh", Multiple: 1e-6},
	{Symbol: "MWh", Multiple: 1e-3},
	{Symbol: "kWh", Multiple: 1},
}

var commonMassUnits = []displayUnit{
	{Symbol: "Mt CO₂", Multiple: 1e-9},
	{Symbol: "kt CO₂", Multiple: 1e-6},
	{Symbol: "t CO₂", Multiple: 1e-3},
	{Symbol: "kg CO₂", Multiple: 1},
}

const (
	autoUnitMinValue = 1.0
	autoUnitMaxValue = 1000.0
)

// BuildCompare 渲染单块土地的对比报告。
func BuildCompare(out app.CompareOutput, asJSON bool) string {
	if asJSON {
		payload := map[string]any{
			"schema_version":       pkg.JSONSchemaVersion,
			"area_m2":              round4(out.AreaM2),
			"area_ha":              round4(out.AreaHa),
			"solar_energy_kwh":     round4(out.SolarEnergyKWh),
			"tree_count":           round4(out.TreeCount),
			"co2_sequestration_kg": round4(out.SequestrationKg),
			"co2_sequestration_t":  round4(out.SequestrationT),
			"assumptions":          assumptionsPayload(out.Assumptions, out.AssumptionsOrigin),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Sprintf("{\n  \"solar_energy_kwh\": %.4f,\n  \"co2_sequestration_kg\": %.4f\n}\n",
				out.SolarEnergyKWh, out.SequestrationKg)
		}
		return string(data) + "\n"
	}

	households := out.SolarEnergyKWh / pkg.HouseholdYearKWh
	cars := out.SequestrationKg / pkg.CarYearKgCO2
	report := fmt.Sprintf(
		"%s\nLand Use Comparison\n%s\nArea: %s m² (%s ha)\nSolar Energy: %s\nTrees Planted: %s\nCO₂ Sequestration: %s\nFun Facts:\n- Equivalent to the annual electricity of %.2f households\n- Equivalent to taking %.2f cars off the road for a year\n",
		divider,
		divider,
		humanize.Commaf(round4(out.AreaM2)),
		humanize.Commaf(round4(out.AreaHa)),
		formatEnergyDisplay(out.SolarEnergyKWh),
		humanize.Commaf(round4(out.TreeCount)),
		formatMassDisplay(out.SequestrationKg),
		households,
		cars,
	)

	report += formatAssumptionLines(out.Assumptions, out.AssumptionsOrigin)
	return report + divider + "\n"
}

// BuildBatch 渲染场景批量报告，失败地块单独列出。
func BuildBatch(out app.BatchOutput, asJSON bool) string {
	if asJSON {
		sites := make([]map[string]any, 0, len(out.Sites))
		for _, site := range out.Sites {
			sites = append(sites, map[string]any{
				"name":                 site.Name,
				"area_m2":              round4(site.AreaM2),
				"area_ha":              round4(site.AreaHa),
				"solar_energy_kwh":     round4(site.SolarEnergyKWh),
				"tree_count":           round4(site.TreeCount),
				"co2_sequestration_kg": round4(site.SequestrationKg),
				"co2_sequestration_t":  round4(site.SequestrationT),
				"assumptions":          assumptionsPayload(site.Assumptions, site.AssumptionsOrigin),
			})
		}
		payload := map[string]any{
			"schema_version": pkg.JSONSchemaVersion,
			"sites":          sites,
			"totals": map[string]any{
				"area_m2":              round4(out.TotalAreaM2),
				"solar_energy_kwh":     round4(out.TotalSolarEnergyKWh),
				"co2_sequestration_kg": round4(out.TotalSequestrationKg),
				"co2_sequestration_t":  round4(out.TotalSequestrationT),
			},
			"assumptions_origin": out.AssumptionsOrigin,
		}
		if len(out.Failures) > 0 {
			payload["failures"] = out.Failures
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Sprintf("{\n  \"solar_energy_kwh\": %.4f,\n  \"co2_sequestration_kg\": %.4f\n}\n",
				out.TotalSolarEnergyKWh, out.TotalSequestrationKg)
		}
		return string(data) + "\n"
	}

	report := fmt.Sprintf(
		"%s\nScenario Report\n%s\nSites: %d succeeded, %d failed\n",
		divider,
		divider,
		len(out.Sites),
		len(out.Failures),
	)
	for _, site := range out.Sites {
		report += fmt.Sprintf("- %s: %s m² | solar %s kWh/year | forest %s kg CO₂/year\n",
			site.Name,
			humanize.Commaf(round4(site.AreaM2)),
			humanize.Commaf(round4(site.SolarEnergyKWh)),
			humanize.Commaf(round4(site.SequestrationKg)),
		)
	}
	report += fmt.Sprintf(
		"Totals:\n  Area: %s m²\n  Solar Energy: %s\n  CO₂ Sequestration: %s\n",
		humanize.Commaf(round4(out.TotalAreaM2)),
		formatEnergyDisplay(out.TotalSolarEnergyKWh),
		formatMassDisplay(out.TotalSequestrationKg),
	)
	if len(out.Failures) > 0 {
		report += "Failures:\n"
		for _, line := range app.FormatSiteFailures(out.Failures) {
			report += "- " + line + "\n"
		}
	}
	report += "Assumptions Source: " + out.AssumptionsOrigin + "\n"
	return report + divider + "\n"
}

// BuildAssumptions 渲染当前生效的假设值。
func BuildAssumptions(out app.ShowOutput, asJSON bool) string {
	if asJSON {
		payload := map[string]any{
			"schema_version":                      pkg.JSONSchemaVersion,
			"solar_yield_kwh_per_m2_year":         out.Set.SolarYieldKWhPerM2Year,
			"sequestration_rate_kg_per_tree_year": out.Set.SequestrationKgPerTreeYear,
			"planting_density_trees_per_ha":       out.Set.PlantingDensityTreesPerHa,
			"origin":                              out.Origin,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Sprintf("{\n  \"origin\": %q\n}\n", out.Origin)
		}
		return string(data) + "\n"
	}

	report := fmt.Sprintf(
		"%s\nEffective Assumptions\n%s\n",
		divider,
		divider,
	)
	report += formatAssumptionLines(out.Set, out.Origin)
	return report + divider + "\n"
}

func formatAssumptionLines(set assumptions.Set, origin string) string {
	return fmt.Sprintf(
		"Assumptions:\n  Solar Yield: %s kWh/m²/year\n  Sequestration Rate: %s kg CO₂/tree/year\n  Planting Density: %s trees/ha (%s trees/m²)\nAssumptions Source: %s\n",
		humanize.Commaf(set.SolarYieldKWhPerM2Year),
		humanize.Commaf(set.SequestrationKgPerTreeYear),
		humanize.Commaf(set.PlantingDensityTreesPerHa),
		humanize.Commaf(set.TreesPerM2()),
		origin,
	)
}

func assumptionsPayload(set assumptions.Set, origin string) map[string]any {
	return map[string]any{
		"solar_yield_kwh_per_m2_year":         set.SolarYieldKWhPerM2Year,
		"sequestration_rate_kg_per_tree_year": set.SequestrationKgPerTreeYear,
		"planting_density_trees_per_ha":       set.PlantingDensityTreesPerHa,
		"origin":                              origin,
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func formatEnergyDisplay(kwh float64) string {
	primary := autoScaled(kwh, commonEnergyUnits)
	kwhRef := fmt.Sprintf("%s kWh/year", humanize.Commaf(round4(kwh)))
	if primary.Symbol == "kWh" {
		return kwhRef
	}
	return fmt.Sprintf("%s/year (%s)", formatScaled(primary.Value, primary.Symbol), kwhRef)
}

func formatMassDisplay(kg float64) string {
	primary := autoScaled(kg, commonMassUnits)
	kgRef := fmt.Sprintf("%s kg CO₂/year", humanize.Commaf(round4(kg)))
	if primary.Symbol == "kg CO₂" {
		return kgRef
	}
	return fmt.Sprintf("%s/year (%s)", formatScaled(primary.Value, primary.Symbol), kgRef)
}

func formatScaled(value float64, symbol string) string {
	abs := math.Abs(value)
	switch {
	case abs >= 100:
		return fmt.Sprintf("%.1f %s", value, symbol)
	case abs >= 1:
		return fmt.Sprintf("%.2f %s", value, symbol)
	case abs >= 0.1:
		return fmt.Sprintf("%.3f %s", value, symbol)
	default:
		return fmt.Sprintf("%.4f %s", value, symbol)
	}
}

type scaledValue struct {
	Value  float64
	Symbol string
}

func autoScaled(base float64, units []displayUnit) scaledValue {
	if base == 0 {
		smallest := units[len(units)-1]
		return scaledValue{Value: 0, Symbol: smallest.Symbol}
	}

	abs := math.Abs(base)
	for _, u := range units {
		v := abs * u.Multiple
		if v >= autoUnitMinValue && v < autoUnitMaxValue {
			return scaledValue{Value: base * u.Multiple, Symbol: u.Symbol}
		}
	}

	smallest := units[len(units)-1]
	largest := units[0]
	if abs*smallest.Multiple < autoUnitMinValue {
		return scaledValue{Value: base * smallest.Multiple, Symbol: smallest.Symbol}
	}
	return scaledValue{Value: base * largest.Multiple, Symbol: largest.Symbol}
}

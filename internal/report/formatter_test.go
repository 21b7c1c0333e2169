package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/chenzhuyu2004/solarforest/internal/app"
	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
)

func baselineCompareOutput() app.CompareOutput {
	return app.CompareOutput{
		AreaM2:            10000,
		AreaHa:            1,
		SolarEnergyKWh:    1800000,
		TreeCount:         1000,
		SequestrationKg:   22000,
		SequestrationT:    22,
		Assumptions:       assumptions.Defaults(),
		AssumptionsOrigin: "built-in defaults",
	}
}

func TestBuildCompareJSONCarriesSchemaAndAssumptions(t *testing.T) {
	out := BuildCompare(baselineCompareOutput(), true)

	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("json unmarshal failed: %v", err)
	}

	if payload["schema_version"] != "1.0" {
		t.Fatalf("schema_version = %#v, expected %q", payload["schema_version"], "1.0")
	}
	if payload["solar_energy_kwh"].(float64) != 1800000 {
		t.Fatalf("solar_energy_kwh mismatch: %#v", payload["solar_energy_kwh"])
	}
	if payload["co2_sequestration_t"].(float64) != 22 {
		t.Fatalf("co2_sequestration_t mismatch: %#v", payload["co2_sequestration_t"])
	}

	block, ok := payload["assumptions"].(map[string]any)
	if !ok {
		t.Fatalf("expected assumptions block, got %#v", payload["assumptions"])
	}
	if block["origin"] != "built-in defaults" {
		t.Fatalf("assumptions origin = %#v, expected %q", block["origin"], "built-in defaults")
	}
	if block["planting_density_trees_per_ha"].(float64) != 1000 {
		t.Fatalf("planting_density_trees_per_ha mismatch: %#v", block["planting_density_trees_per_ha"])
	}
}

func TestBuildCompareTextScalesUnitsAndKeepsRawFigures(t *testing.T) {
	out := BuildCompare(baselineCompareOutput(), false)

	checks := []string{
		"Land Use Comparison",
		"Area: 10,000 m² (1 ha)",
		"1.80 GWh/year",
		"1,800,000 kWh/year",
		"Trees Planted: 1,000",
		"22.00 t CO₂/year",
		"22,000 kg CO₂/year",
		"Fun Facts:",
		"Assumptions Source: built-in defaults",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

func TestBuildBatchTextListsSitesTotalsAndFailures(t *testing.T) {
	batch := app.BatchOutput{
		Sites: []app.SiteResult{
			{Name: "north-field", CompareOutput: baselineCompareOutput()},
		},
		TotalAreaM2:          10000,
		TotalSolarEnergyKWh:  1800000,
		TotalSequestrationKg: 22000,
		TotalSequestrationT:  22,
		Failures:             map[string]string{"west-ridge": "unknown panel profile"},
		AssumptionsOrigin:    "built-in defaults",
	}

	out := BuildBatch(batch, false)
	checks := []string{
		"Scenario Report",
		"Sites: 1 succeeded, 1 failed",
		"- north-field: 10,000 m²",
		"Totals:",
		"1.80 GWh/year",
		"Failures:",
		"- site west-ridge failed: unknown panel profile",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

func TestBuildBatchJSONIncludesTotalsAndFailures(t *testing.T) {
	batch := app.BatchOutput{
		Sites: []app.SiteResult{
			{Name: "north-field", CompareOutput: baselineCompareOutput()},
		},
		TotalAreaM2:          10000,
		TotalSolarEnergyKWh:  1800000,
		TotalSequestrationKg: 22000,
		TotalSequestrationT:  22,
		Failures:             map[string]string{"west-ridge": "bad area"},
		AssumptionsOrigin:    "built-in defaults",
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(BuildBatch(batch, true)), &payload); err != nil {
		t.Fatalf("json unmarshal failed: %v", err)
	}

	totals, ok := payload["totals"].(map[string]any)
	if !ok {
		t.Fatalf("expected totals block, got %#v", payload["totals"])
	}
	if totals["solar_energy_kwh"].(float64) != 1800000 {
		t.Fatalf("totals solar_energy_kwh mismatch: %#v", totals["solar_energy_kwh"])
	}
	failures, ok := payload["failures"].(map[string]any)
	if !ok {
		t.Fatalf("expected failures block, got %#v", payload["failures"])
	}
	if failures["west-ridge"] != "bad area" {
		t.Fatalf("failures mismatch: %#v", failures)
	}
}

func TestBuildAuditTextShowsSectionsAndVerdict(t *testing.T) {
	rep := assumptions.Report{Summary: "audit failed (1 error(s))"}
	rep.AddError(assumptions.Finding{
		Check:    "conversion.definitional",
		Section:  "conversions",
		Message:  "hectare conversion drifted",
		Actual:   "9,000 m²",
		Expected: "10,000 m²",
	})
	rep.AddInfo(assumptions.Finding{
		Check:   "value.baseline",
		Message: "solar_yield differs from the built-in baseline",
	})

	out := BuildAudit(app.AuditOutput{Path: "doc.md", Report: rep}, false)
	checks := []string{
		"Assumptions Audit",
		"Document: doc.md",
		"ERRORS (1):",
		"[conversion.definitional] hectare conversion drifted",
		"-> conversions = 9,000 m²",
		"expected: 10,000 m²",
		"INFO (1):",
		"Result: INVALID (audit failed (1 error(s)))",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

func TestBuildAuditJSONUsesEmptyArraysForNoFindings(t *testing.T) {
	rep := assumptions.Report{Valid: true, Summary: "audit passed"}

	var payload map[string]any
	if err := json.Unmarshal([]byte(BuildAudit(app.AuditOutput{Path: "doc.md", Report: rep}, true)), &payload); err != nil {
		t.Fatalf("json unmarshal failed: %v", err)
	}

	for _, key := range []string{"errors", "warnings", "info"} {
		arr, ok := payload[key].([]any)
		if !ok {
			t.Fatalf("expected %s to be an array, got %#v", key, payload[key])
		}
		if len(arr) != 0 {
			t.Fatalf("expected %s to be empty, got %#v", key, arr)
		}
	}
	if payload["valid"] != true {
		t.Fatalf("valid = %#v, expected true", payload["valid"])
	}
}

func TestBuildAssumptionsTextShowsDerivedDensity(t *testing.T) {
	out := BuildAssumptions(app.ShowOutput{
		Set:    assumptions.Defaults(),
		Origin: "built-in defaults",
	}, false)

	checks := []string{
		"Effective Assumptions",
		"Solar Yield: 180 kWh/m²/year",
		"Sequestration Rate: 22 kg CO₂/tree/year",
		"Planting Density: 1,000 trees/ha (0.1 trees/m²)",
		"Assumptions Source: built-in defaults",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q, got:\n%s", c, out)
		}
	}
}

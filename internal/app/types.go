package app

import (
	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/internal/scenario"
)

type CompareInput struct {
	// Exactly one of AreaM2/AreaHa must be positive.
	// AreaM2 与 AreaHa 必须恰好提供一个正值。
	AreaM2 float64
	AreaHa float64

	// Panel and Species optionally select rate profiles; empty means the
	// document value applies unchanged.
	Panel   string
	Species string
}

type CompareOutput struct {
	AreaM2          float64
	AreaHa          float64
	SolarEnergyKWh  float64
	TreeCount       float64
	SequestrationKg float64
	SequestrationT  float64

	// Assumptions echoes the effective values used.
	// Assumptions 回显实际生效的假设值，便于审计与复现。
	Assumptions       assumptions.Set
	AssumptionsOrigin string
}

type BatchInput struct {
	Scenario *scenario.File
}

type SiteResult struct {
	Name string
	CompareOutput
}

type BatchOutput struct {
	// Sites holds successful evaluations, sorted by site name.
	Sites []SiteResult

	TotalAreaM2          float64
	TotalSolarEnergyKWh  float64
	TotalSequestrationKg float64
	TotalSequestrationT  float64

	// Failures maps site name to reason for sites that were skipped.
	Failures map[string]string

	AssumptionsOrigin string
}

type AuditInput struct {
	Path string
}

type AuditOutput struct {
	Path   string
	Report assumptions.Report
}

type ShowOutput struct {
	Set    assumptions.Set
	Origin string
}

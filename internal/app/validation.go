package app

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/internal/calculator"
	"github.com/chenzhuyu2004/solarforest/pkg/models"
)

// maxAreaM2 keeps inputs inside a sane range; 1e12 m² is on the order of
// the land area of the largest countries.
const maxAreaM2 = 1e12

func resolveArea(areaM2, areaHa float64) (float64, error) {
	if math.IsNaN(areaM2) || math.IsInf(areaM2, 0) ||
		math.IsNaN(areaHa) || math.IsInf(areaHa, 0) {
		return 0, fmt.Errorf("%w: area must be a finite number", ErrInput)
	}
	if areaM2 < 0 || areaHa < 0 {
		return 0, fmt.Errorf("%w: area must not be negative", ErrInput)
	}
	if (areaM2 > 0) == (areaHa > 0) {
		return 0, fmt.Errorf("%w: exactly one of area-m2 or area-ha is required", ErrInput)
	}

	resolved := areaM2
	if areaHa > 0 {
		resolved = calculator.HectaresToM2(areaHa)
	}
	if resolved > maxAreaM2 {
		return 0, fmt.Errorf("%w: area must be <= %.0f m²", ErrInput, float64(maxAreaM2))
	}
	return resolved, nil
}

func resolveProfiles(set assumptions.Set, panel, species string) (assumptions.Set, error) {
	if panel != "" {
		p, ok := models.PanelProfiles[panel]
		if !ok {
			return set, fmt.Errorf("%w: unknown panel profile %q (available: %s)",
				ErrInput, panel, strings.Join(panelKeys(), "|"))
		}
		set.SolarYieldKWhPerM2Year = p.YieldKWhPerM2Year
	}
	if species != "" {
		sp, ok := models.SpeciesProfiles[species]
		if !ok {
			return set, fmt.Errorf("%w: unknown species profile %q (available: %s)",
				ErrInput, species, strings.Join(speciesKeys(), "|"))
		}
		set.SequestrationKgPerTreeYear = sp.SequestrationKgPerTreeYear
	}
	return set, nil
}

func validateAssumptionSet(set assumptions.Set) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"solar yield", set.SolarYieldKWhPerM2Year},
		{"sequestration rate", set.SequestrationKgPerTreeYear},
		{"planting density", set.PlantingDensityTreesPerHa},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value <= 0 {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrSource, c.name, c.value)
		}
	}
	return nil
}

func panelKeys() []string {
	keys := make([]string, 0, len(models.PanelProfiles))
	for k := range models.PanelProfiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func speciesKeys() []string {
	keys := make([]string, 0, len(models.SpeciesProfiles))
	for k := range models.SpeciesProfiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package app

import (
	"context"
	"fmt"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/internal/calculator"
)

// Compare 对同一块土地评估两种用途：光伏年发电量与植树年固碳量。
func (a *App) Compare(ctx context.Context, in CompareInput) (CompareOutput, error) {
	if a == nil || a.source == nil {
		return CompareOutput{}, fmt.Errorf("%w: assumptions source is not configured", ErrSource)
	}

	areaM2, err := resolveArea(in.AreaM2, in.AreaHa)
	if err != nil {
		return CompareOutput{}, err
	}

	base, err := a.source.Load(ctx)
	if err != nil {
		return CompareOutput{}, wrapSourceError(err)
	}
	set, err := resolveProfiles(base, in.Panel, in.Species)
	if err != nil {
		return CompareOutput{}, err
	}
	if err := validateAssumptionSet(set); err != nil {
		return CompareOutput{}, err
	}

	return buildComparison(areaM2, set, a.source.Describe()), nil
}

func buildComparison(areaM2 float64, set assumptions.Set, origin string) CompareOutput {
	sequestered := calculator.SequestrationKg(areaM2, set.PlantingDensityTreesPerHa, set.SequestrationKgPerTreeYear)
	return CompareOutput{
		AreaM2:            areaM2,
		AreaHa:            calculator.M2ToHectares(areaM2),
		SolarEnergyKWh:    calculator.SolarEnergyKWh(areaM2, set.SolarYieldKWhPerM2Year),
		TreeCount:         calculator.TreeCount(areaM2, set.PlantingDensityTreesPerHa),
		SequestrationKg:   sequestered,
		SequestrationT:    calculator.KgToTonnes(sequestered),
		Assumptions:       set,
		AssumptionsOrigin: origin,
	}
}

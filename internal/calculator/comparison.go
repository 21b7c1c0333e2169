package calculator

import "github.com/chenzhuyu2004/solarforest/pkg"

func SolarEnergyKWh(areaM2, yieldKWhPerM2Year float64) float64 {
	return areaM2 * yieldKWhPerM2Year
}

func TreeCount(areaM2, densityTreesPerHa float64) float64 {
	treesPerM2 := densityTreesPerHa / pkg.M2PerHectare
	return areaM2 * treesPerM2
}

func SequestrationKg(areaM2, densityTreesPerHa, rateKgPerTreeYear float64) float64 {
	return TreeCount(areaM2, densityTreesPerHa) * rateKgPerTreeYear
}

func KgToTonnes(kg float64) float64 {
	return kg / pkg.KgPerTonne
}

func HectaresToM2(ha float64) float64 {
	return ha * pkg.M2PerHectare
}

func M2ToHectares(areaM2 float64) float64 {
	return areaM2 / pkg.M2PerHectare
}

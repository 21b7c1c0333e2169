package calculator

import (
	"math"
	"testing"
)

func TestSolarEnergyKWhOneHectare(t *testing.T) {
	got := SolarEnergyKWh(10000, 180)
	if math.Abs(got-1800000) > 1e-9 {
		t.Fatalf("SolarEnergyKWh(10000, 180) = %v, expected %v", got, 1800000.0)
	}
}

func TestTreeCountOneHectare(t *testing.T) {
	got := TreeCount(10000, 1000)
	if math.Abs(got-1000) > 1e-9 {
		t.Fatalf("TreeCount(10000, 1000) = %v, expected %v", got, 1000.0)
	}
}

func TestSequestrationKgOneHectare(t *testing.T) {
	got := SequestrationKg(10000, 1000, 22)
	if math.Abs(got-22000) > 1e-9 {
		t.Fatalf("SequestrationKg(10000, 1000, 22) = %v, expected %v", got, 22000.0)
	}
}

func TestKgToTonnes(t *testing.T) {
	got := KgToTonnes(22000)
	if math.Abs(got-22) > 1e-9 {
		t.Fatalf("KgToTonnes(22000) = %v, expected %v", got, 22.0)
	}
}

func TestZeroAreaProducesNothing(t *testing.T) {
	if got := SolarEnergyKWh(0, 180); got != 0 {
		t.Fatalf("SolarEnergyKWh(0, 180) = %v, expected 0", got)
	}
	if got := TreeCount(0, 1000); got != 0 {
		t.Fatalf("TreeCount(0, 1000) = %v, expected 0", got)
	}
	if got := SequestrationKg(0, 1000, 22); got != 0 {
		t.Fatalf("SequestrationKg(0, 1000, 22) = %v, expected 0", got)
	}
}

func TestLinearInArea(t *testing.T) {
	small := SolarEnergyKWh(250, 180)
	large := SolarEnergyKWh(1000, 180)
	if math.Abs(large-4*small) > 1e-9 {
		t.Fatalf("SolarEnergyKWh not linear in area: 4*%v != %v", small, large)
	}
}

func TestAreaConversionRoundTrip(t *testing.T) {
	got := M2ToHectares(HectaresToM2(2.5))
	if math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("M2ToHectares(HectaresToM2(2.5)) = %v, expected 2.5", got)
	}
}

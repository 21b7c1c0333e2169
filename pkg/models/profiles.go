package models

// PanelProfile adjusts the solar yield assumption for a named panel
// technology. Yields are land-area yields with system losses included,
// consistent with the baseline assumption.
type PanelProfile struct {
	Name              string
	YieldKWhPerM2Year float64
}

// SpeciesProfile adjusts the sequestration assumption for a named tree
// species group. Rates are per growing tree, young-stand averages.
type SpeciesProfile struct {
	Name                       string
	SequestrationKgPerTreeYear float64
}

var PanelProfiles = map[string]PanelProfile{
	"mono":      {Name: "Monocrystalline silicon", YieldKWhPerM2Year: 210},
	"poly":      {Name: "Polycrystalline silicon", YieldKWhPerM2Year: 170},
	"thin-film": {Name: "Thin-film CdTe", YieldKWhPerM2Year: 120},
}

var SpeciesProfiles = map[string]SpeciesProfile{
	"poplar": {Name: "Hybrid poplar", SequestrationKgPerTreeYear: 30},
	"oak":    {Name: "Oak", SequestrationKgPerTreeYear: 20},
	"pine":   {Name: "Scots pine", SequestrationKgPerTreeYear: 17},
}

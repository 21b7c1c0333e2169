package assumptions

// Citation names a source backing an assumption.
type Citation struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Assumption is one documented value: what it is, why this number, and who
// says so.
type Assumption struct {
	Key       string     `json:"key"`
	Title     string     `json:"title"`
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	Rationale []string   `json:"rationale"`
	Citations []Citation `json:"citations"`
}

// Document is the structured form of ASSUMPTIONS.md.
type Document struct {
	Assumptions []Assumption `json:"assumptions"`
}

// Set collapses the document to the numeric view, falling back to defaults
// for any assumption the document does not carry.
func (d Document) Set() Set {
	set := Defaults()
	for _, a := range d.Assumptions {
		switch a.Key {
		case KeySolarYield:
			set.SolarYieldKWhPerM2Year = a.Value
		case KeySequestration:
			set.SequestrationKgPerTreeYear = a.Value
		case KeyDensity:
			set.PlantingDensityTreesPerHa = a.Value
		}
	}
	return set
}

// Canonical returns the baseline document: the compiled defaults with their
// full rationale and citations. Render(Canonical()) is the reference
// ASSUMPTIONS.md.
func Canonical() Document {
	return Document{
		Assumptions: []Assumption{
			{
				Key:   KeySolarYield,
				Title: "Solar yield",
				Value: 180,
				Unit:  UnitSolarYield,
				Rationale: []string{
					"Annual electricity from solar panels per square metre of land, " +
						"with panel efficiency, inverter and wiring losses, and weather " +
						"already included. For a mid-latitude site a specific yield near " +
						"1,200 kWh per kWp per year at a land power density of about " +
						"0.15 kWp per m² works out to 180.",
					"Panel technology moves this number noticeably: monocrystalline " +
						"arrays reach roughly 210, polycrystalline sits near 170, and " +
						"thin-film closer to 120.",
				},
				Citations: []Citation{
					{Name: "Global Solar Atlas", URL: "https://globalsolaratlas.info"},
					{Name: "Fraunhofer ISE, Photovoltaics Report", URL: "https://www.ise.fraunhofer.de/en/publications/studies/photovoltaics-report.html"},
				},
			},
			{
				Key:   KeySequestration,
				Title: "Sequestration rate",
				Value: 22,
				Unit:  UnitSequestration,
				Rationale: []string{
					"CO₂ removed per tree per year, averaged over a young, actively " +
						"growing mixed temperate stand. Mature trees absorb more, " +
						"seedlings much less, so a single per-tree figure is only " +
						"meaningful as a stand average.",
					"Species matter: hybrid poplar manages around 30, oak around 20, " +
						"Scots pine nearer 17.",
				},
				Citations: []Citation{
					{Name: "European Environment Agency, forest factsheets", URL: "https://www.eea.europa.eu"},
					{Name: "FAO Global Forest Resources Assessment", URL: "https://www.fao.org/forest-resources-assessment"},
				},
			},
			{
				Key:   KeyDensity,
				Title: "Planting density",
				Value: 1000,
				Unit:  UnitDensity,
				Rationale: []string{
					"Trees planted per hectare of land. This is a design choice, not " +
						"a measurement: common broadleaf and conifer afforestation " +
						"schemes plant between 1,000 and 2,500 stems per hectare and " +
						"thin the stand as it grows. The baseline takes the low end, " +
						"which is conservative for sequestration.",
				},
				Citations: []Citation{
					{Name: "UK Forestry Commission, woodland creation guidance", URL: "https://www.gov.uk/government/organisations/forestry-commission"},
				},
			},
		},
	}
}

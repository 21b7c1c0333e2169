package assumptions

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/chenzhuyu2004/solarforest/internal/calculator"
	"github.com/chenzhuyu2004/solarforest/pkg"
)

const proseWidth = 76

// Render 生成规范的 ASSUMPTIONS.md 内容。Parse(Render(doc)) 必须还原 doc 的数值。
func Render(doc Document) []byte {
	set := doc.Set()
	var b strings.Builder

	b.WriteString("# Assumptions\n\n")
	b.WriteString("Baseline numbers for a first-order comparison of two uses of the same\n")
	b.WriteString("plot of land: cover it with solar panels, or plant it with trees.\n")
	b.WriteString("Values sit in backticks next to their units so tooling can read them\n")
	b.WriteString("back; `solarforest audit` verifies this file and `solarforest render`\n")
	b.WriteString("regenerates it.\n")

	for _, a := range doc.Assumptions {
		b.WriteString("\n## " + a.Title + "\n\n")
		fmt.Fprintf(&b, "- Value: `%s %s`\n", formatValue(a.Value), a.Unit)
		for _, p := range a.Rationale {
			b.WriteString("\n" + wrap(p, proseWidth) + "\n")
		}
		if len(a.Citations) > 0 {
			b.WriteString("\nSources:\n\n")
			for _, c := range a.Citations {
				if c.URL != "" {
					fmt.Fprintf(&b, "- %s (%s)\n", c.Name, c.URL)
				} else {
					fmt.Fprintf(&b, "- %s\n", c.Name)
				}
			}
		}
	}

	b.WriteString("\n## Unit conversions\n\n")
	b.WriteString("Definitional constants. These are exact and never tuned:\n\n")
	fmt.Fprintf(&b, "- 1 hectare = `%s m²`\n", formatValue(pkg.M2PerHectare))
	fmt.Fprintf(&b, "- 1 tonne = `%s kg`\n\n", formatValue(pkg.KgPerTonne))
	b.WriteString("Planting density per square metre is always derived, never set directly:\n")
	fmt.Fprintf(&b, "`%s trees/m²` (%s trees per hectare ÷ %s m² per hectare).\n",
		formatValue(set.TreesPerM2()), formatValue(set.PlantingDensityTreesPerHa),
		formatValue(pkg.M2PerHectare))

	area := pkg.M2PerHectare
	energy := calculator.SolarEnergyKWh(area, set.SolarYieldKWhPerM2Year)
	trees := calculator.TreeCount(area, set.PlantingDensityTreesPerHa)
	sequestered := calculator.SequestrationKg(area, set.PlantingDensityTreesPerHa, set.SequestrationKgPerTreeYear)
	tonnes := calculator.KgToTonnes(sequestered)

	b.WriteString("\n## Worked example\n\n")
	fmt.Fprintf(&b, "One hectare (`%s m²`) fully used, over one year:\n\n", formatValue(area))
	fmt.Fprintf(&b, "- Solar panels: %s m² × %s kWh/m²/year = `%s kWh/year`\n",
		formatValue(area), formatValue(set.SolarYieldKWhPerM2Year), formatValue(energy))
	fmt.Fprintf(&b, "- Afforestation: %s trees × %s kg CO₂/tree/year = `%s kg CO₂/year` = `%s t CO₂/year`\n",
		formatValue(trees), formatValue(set.SequestrationKgPerTreeYear),
		formatValue(sequestered), formatValue(tonnes))

	return []byte(b.String())
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.Commaf(v)
}

// wrap reflows prose to the given width. Rationale text never carries
// backticked spans, so breaking on any space is safe.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			b.WriteString(line + "\n")
			line = w
			continue
		}
		line += " " + w
	}
	b.WriteString(line)
	return b.String()
}

package assumptions

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/chenzhuyu2004/solarforest/internal/calculator"
	"github.com/chenzhuyu2004/solarforest/pkg"
)

// Finding is a single audit observation against the document.
type Finding struct {
	Check    string `json:"check"`
	Section  string `json:"section,omitempty"`
	Message  string `json:"message"`
	Actual   string `json:"actual,omitempty"`
	Expected string `json:"expected,omitempty"`
}

// Report collects audit findings by severity. Valid means no errors.
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
	Summary  string    `json:"summary"`
}

func (r *Report) AddError(f Finding)   { r.Errors = append(r.Errors, f) }
func (r *Report) AddWarning(f Finding) { r.Warnings = append(r.Warnings, f) }
func (r *Report) AddInfo(f Finding)    { r.Info = append(r.Info, f) }

const (
	sectionConversions = "conversions"
	sectionExample     = "example"
)

type auditedKey struct {
	key      string
	unit     string
	pattern  *regexp.Regexp
	baseline float64
}

var auditedKeys = []auditedKey{
	{key: KeySolarYield, unit: UnitSolarYield, pattern: solarPattern, baseline: pkg.SolarYieldKWhPerM2Year},
	{key: KeySequestration, unit: UnitSequestration, pattern: sequestrationPattern, baseline: pkg.SequestrationKgPerTreeYear},
	{key: KeyDensity, unit: UnitDensity, pattern: densityPattern, baseline: pkg.PlantingDensityTreesPerHa},
}

// Figures the audit reads liberally (commas and decimals allowed); these are
// our own checks, not the value parser.
var (
	hectarePattern       = regexp.MustCompile("`" + `([0-9.,]+)\s*m²` + "`")
	tonnePattern         = regexp.MustCompile("`" + `([0-9.,]+)\s*kg` + "`")
	derivedPattern       = regexp.MustCompile("`" + `([0-9.,]+)\s*trees/m²` + "`")
	exampleEnergyPattern = regexp.MustCompile("`" + `([0-9.,]+)\s*kWh/year` + "`")
	exampleKgPattern     = regexp.MustCompile("`" + `([0-9.,]+)\s*kg CO₂/year` + "`")
	exampleTonnePattern  = regexp.MustCompile("`" + `([0-9.,]+)\s*t CO₂/year` + "`")
)

// Audit 对文档做结构化校验:数值为正、换算常量未被改动、
// 密度换算自洽、示例可由假设值复算、每个假设有依据与出处。
func Audit(content []byte) Report {
	var r Report
	secs := splitSections(content)
	set := Parse(content)

	auditValues(secs, &r)
	auditConversions(secs, &r)
	auditDensityEquivalence(content, set, &r)
	auditExample(secs, set, &r)
	auditProvenance(secs, &r)

	r.Valid = len(r.Errors) == 0
	r.Summary = summarize(r)
	return r
}

func auditValues(secs map[string]string, r *Report) {
	for _, k := range auditedKeys {
		body, ok := secs[k.key]
		if !ok {
			r.AddError(Finding{Check: "value.positive", Section: k.key,
				Message: "section not found"})
			continue
		}
		v, found := matchValue(k.pattern, []byte(body))
		if !found {
			r.AddError(Finding{Check: "value.positive", Section: k.key,
				Message:  fmt.Sprintf("no parseable value with unit %s", k.unit),
				Expected: fmt.Sprintf("`<number> %s`", k.unit)})
			continue
		}
		if v <= 0 {
			r.AddError(Finding{Check: "value.positive", Section: k.key,
				Message: "value must be positive",
				Actual:  formatValue(v)})
			continue
		}
		if v != k.baseline {
			r.AddInfo(Finding{Check: "value.baseline", Section: k.key,
				Message:  "value differs from the compiled baseline",
				Actual:   formatValue(v),
				Expected: formatValue(k.baseline)})
		}
	}
}

func auditConversions(secs map[string]string, r *Report) {
	body, ok := secs[sectionConversions]
	if !ok {
		r.AddError(Finding{Check: "conversion.definitional", Section: sectionConversions,
			Message: "section not found"})
		return
	}
	checkFixed(r, body, hectarePattern, pkg.M2PerHectare, "m² per hectare")
	checkFixed(r, body, tonnePattern, pkg.KgPerTonne, "kg per tonne")
}

func checkFixed(r *Report, body string, re *regexp.Regexp, want float64, label string) {
	v, ok := liberalValue(re, body)
	if !ok {
		r.AddError(Finding{Check: "conversion.definitional", Section: sectionConversions,
			Message:  label + " not stated",
			Expected: formatValue(want)})
		return
	}
	if v != want {
		r.AddError(Finding{Check: "conversion.definitional", Section: sectionConversions,
			Message:  label + " is definitional and must not be adjusted",
			Actual:   formatValue(v),
			Expected: formatValue(want)})
	}
}

func auditDensityEquivalence(content []byte, set Set, r *Report) {
	want := set.TreesPerM2()
	v, ok := liberalValue(derivedPattern, string(content))
	if !ok {
		r.AddError(Finding{Check: "density.equivalence",
			Message:  "derived per-square-metre density not stated",
			Expected: formatValue(want) + " trees/m²"})
		return
	}
	if math.Abs(v-want) > 1e-9 {
		r.AddError(Finding{Check: "density.equivalence",
			Message:  "stated trees/m² does not equal trees per hectare divided by m² per hectare",
			Actual:   formatValue(v),
			Expected: formatValue(want)})
	}
}

func auditExample(secs map[string]string, set Set, r *Report) {
	body, ok := secs[sectionExample]
	if !ok {
		r.AddError(Finding{Check: "example.reproduction", Section: sectionExample,
			Message: "section not found"})
		return
	}
	area := pkg.M2PerHectare
	wantEnergy := calculator.SolarEnergyKWh(area, set.SolarYieldKWhPerM2Year)
	wantKg := calculator.SequestrationKg(area, set.PlantingDensityTreesPerHa, set.SequestrationKgPerTreeYear)
	wantTonnes := calculator.KgToTonnes(wantKg)

	checkExampleFigure(r, body, exampleEnergyPattern, wantEnergy, "solar energy for one hectare")
	checkExampleFigure(r, body, exampleKgPattern, wantKg, "sequestration for one hectare")
	checkExampleFigure(r, body, exampleTonnePattern, wantTonnes, "sequestration in tonnes")
}

func checkExampleFigure(r *Report, body string, re *regexp.Regexp, want float64, label string) {
	got, ok := liberalValue(re, body)
	if !ok {
		r.AddError(Finding{Check: "example.reproduction", Section: sectionExample,
			Message:  label + " not stated",
			Expected: formatValue(want)})
		return
	}
	// Stated figures may be rounded to whole numbers.
	if math.Abs(got-want) > 0.5 {
		r.AddError(Finding{Check: "example.reproduction", Section: sectionExample,
			Message:  label + " does not reproduce from the stated assumptions",
			Actual:   formatValue(got),
			Expected: formatValue(want)})
	}
}

func auditProvenance(secs map[string]string, r *Report) {
	for _, k := range auditedKeys {
		body, ok := secs[k.key]
		if !ok {
			continue // reported by auditValues already
		}
		if !hasRationale(body) {
			r.AddError(Finding{Check: "provenance.rationale", Section: k.key,
				Message: "no rationale prose accompanies the value"})
		}
		cites := citations(body)
		if len(cites) == 0 {
			r.AddError(Finding{Check: "provenance.citations", Section: k.key,
				Message: "at least one named source citation is required"})
			continue
		}
		for _, c := range cites {
			if !strings.Contains(c, "http") {
				r.AddWarning(Finding{Check: "provenance.citations", Section: k.key,
					Message: "citation has no link: " + c})
			}
		}
	}
}

func splitSections(content []byte) map[string]string {
	out := map[string]string{}
	var current string
	var body strings.Builder
	flush := func() {
		if current != "" {
			out[current] = body.String()
		}
		body.Reset()
	}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			current = classifySection(strings.TrimPrefix(line, "## "))
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()
	return out
}

func classifySection(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "solar"):
		return KeySolarYield
	case strings.Contains(t, "sequestration"):
		return KeySequestration
	case strings.Contains(t, "density"):
		return KeyDensity
	case strings.Contains(t, "conversion"):
		return sectionConversions
	case strings.Contains(t, "example"):
		return sectionExample
	}
	return ""
}

func liberalValue(re *regexp.Regexp, body string) (float64, bool) {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return 0, false
	}
	raw := strings.ReplaceAll(m[1], ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func hasRationale(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "-") || t == "Sources:" {
			continue
		}
		return true
	}
	return false
}

func citations(body string) []string {
	var out []string
	seen := false
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		switch {
		case t == "Sources:":
			seen = true
		case !seen || t == "":
			// keep scanning
		case strings.HasPrefix(t, "- "):
			out = append(out, strings.TrimPrefix(t, "- "))
		default:
			return out
		}
	}
	return out
}

func summarize(r Report) string {
	if len(r.Errors) == 0 {
		if len(r.Warnings) == 0 && len(r.Info) == 0 {
			return "audit passed"
		}
		return fmt.Sprintf("audit passed (%d warning(s), %d note(s))",
			len(r.Warnings), len(r.Info))
	}
	return fmt.Sprintf("audit failed (%d error(s), %d warning(s), %d note(s))",
		len(r.Errors), len(r.Warnings), len(r.Info))
}

package assumptions

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chenzhuyu2004/solarforest/internal/log"
)

// Values are matched anywhere in the document, inside backticks and followed
// by the exact unit, e.g. `180 kWh/m²/year`. Numbers are integers with an
// optional single comma group; anything else leaves the default in place.
var (
	solarPattern         = valuePattern(UnitSolarYield)
	sequestrationPattern = valuePattern(UnitSequestration)
	densityPattern       = valuePattern(UnitDensity)
)

func valuePattern(unit string) *regexp.Regexp {
	return regexp.MustCompile("`" + `(\d+(?:,\d+)?)\s*` + regexp.QuoteMeta(unit) + "`")
}

// Parse 从文档内容提取假设值；未匹配到的键保留编译期默认值。
func Parse(content []byte) Set {
	set := Defaults()
	logger := log.WithComponent("assumptions")

	if v, ok := matchValue(solarPattern, content); ok {
		set.SolarYieldKWhPerM2Year = v
	} else {
		logger.Debug().Str("key", KeySolarYield).
			Float64("default", set.SolarYieldKWhPerM2Year).
			Msg("no parseable value in document, keeping default")
	}

	if v, ok := matchValue(sequestrationPattern, content); ok {
		set.SequestrationKgPerTreeYear = v
	} else {
		logger.Debug().Str("key", KeySequestration).
			Float64("default", set.SequestrationKgPerTreeYear).
			Msg("no parseable value in document, keeping default")
	}

	if v, ok := matchValue(densityPattern, content); ok {
		set.PlantingDensityTreesPerHa = v
	} else {
		logger.Debug().Str("key", KeyDensity).
			Float64("default", set.PlantingDensityTreesPerHa).
			Msg("no parseable value in document, keeping default")
	}

	return set
}

func matchValue(re *regexp.Regexp, content []byte) (float64, bool) {
	m := re.FindSubmatch(content)
	if m == nil {
		return 0, false
	}
	raw := strings.ReplaceAll(string(m[1]), ",", "")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

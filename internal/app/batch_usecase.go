package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/chenzhuyu2004/solarforest/internal/assumptions"
	"github.com/chenzhuyu2004/solarforest/internal/calculator"
	"github.com/chenzhuyu2004/solarforest/internal/scenario"
)

// Batch 按场景文件逐地块评估，并汇总成功地块的总量。
// 单个地块的失败不会中止整个批次；全部失败才返回错误。
func (a *App) Batch(ctx context.Context, in BatchInput) (BatchOutput, error) {
	if a == nil || a.source == nil {
		return BatchOutput{}, fmt.Errorf("%w: assumptions source is not configured", ErrSource)
	}
	if in.Scenario == nil {
		return BatchOutput{}, fmt.Errorf("%w: scenario is required", ErrInput)
	}
	if err := in.Scenario.Validate(); err != nil {
		return BatchOutput{}, fmt.Errorf("%w: %v", ErrInput, err)
	}

	base, err := a.source.Load(ctx)
	if err != nil {
		return BatchOutput{}, wrapSourceError(err)
	}
	if err := validateAssumptionSet(base); err != nil {
		return BatchOutput{}, err
	}

	out := BatchOutput{
		Failures:          make(map[string]string),
		AssumptionsOrigin: a.source.Describe(),
	}

	for _, site := range in.Scenario.Sites {
		if err := ctx.Err(); err != nil {
			return BatchOutput{}, err
		}

		result, err := a.evaluateSite(site, base)
		if err != nil {
			out.Failures[site.Name] = err.Error()
			continue
		}

		out.Sites = append(out.Sites, result)
		out.TotalAreaM2 += result.AreaM2
		out.TotalSolarEnergyKWh += result.SolarEnergyKWh
		out.TotalSequestrationKg += result.SequestrationKg
	}

	if len(out.Sites) == 0 {
		return BatchOutput{}, fmt.Errorf("%w: every site failed", ErrInput)
	}

	out.TotalSequestrationT = calculator.KgToTonnes(out.TotalSequestrationKg)
	sort.Slice(out.Sites, func(i, j int) bool {
		return out.Sites[i].Name < out.Sites[j].Name
	})
	return out, nil
}

func (a *App) evaluateSite(site scenario.Site, base assumptions.Set) (SiteResult, error) {
	areaM2, err := resolveArea(site.AreaM2, site.AreaHa)
	if err != nil {
		return SiteResult{}, err
	}
	set, err := resolveProfiles(base, site.Panel, site.Species)
	if err != nil {
		return SiteResult{}, err
	}
	return SiteResult{
		Name:          site.Name,
		CompareOutput: buildComparison(areaM2, set, a.source.Describe()),
	}, nil
}

func FormatSiteFailures(failures map[string]string) []string {
	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("site %s failed: %s", name, failures[name]))
	}
	return lines
}

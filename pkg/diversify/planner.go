package diversify

import (
	"fmt"
	"math"

	"agroclimate/entities"
	"agroclimate/pkg/season"
)

// Planner allocates cultivable area across a primary crop and hedge
// crops from risk-banded percentage tables. Stateless: a plan is fully
// recomputable from the current risk level and area.
type Planner interface {
	Plan(level entities.RiskLevel, totalAreaHa float64, primaryCrop, region string) (*entities.DiversificationPlan, error)
}

// allocation is a risk band's percentage split. Percentages always sum
// to 100; hedge slots beyond the available hedge crops collapse into
// the last filled slot.
type allocation struct {
	Primary int
	Hedges  []int
}

var bands = map[entities.RiskLevel]allocation{
	entities.RiskLow:      {Primary: 90, Hedges: []int{10}},
	entities.RiskModerate: {Primary: 70, Hedges: []int{20, 10}},
	entities.RiskHigh:     {Primary: 50, Hedges: []int{30, 20}},
}

// hedgeCrops orders each region's drought-tolerant crops, most
// tolerant first. Regions without an entry fall back to the generic
// hedge crop.
var hedgeCrops = map[string][]string{
	season.RegionHighland:  {"sorghum", "millet", "cowpea"},
	season.RegionLakeBasin: {"cassava", "sorghum", "cowpea"},
	season.RegionSemiArid:  {"millet", "sorghum", "cowpea"},
	season.RegionCoastal:   {"cassava", "cowpea", "millet"},
}

const genericHedge = "cowpea"

type planner struct{}

func New() Planner { return &planner{} }

func (planner) Plan(level entities.RiskLevel, totalAreaHa float64, primaryCrop, region string) (*entities.DiversificationPlan, error) {
	if totalAreaHa <= 0 {
		return nil, fmt.Errorf("%w: total area must be positive", entities.ErrInconsistentPlantingRecord)
	}
	alloc, ok := bands[level]
	if !ok {
		alloc = bands[entities.RiskModerate]
	}

	hedges := pickHedges(region, primaryCrop, len(alloc.Hedges))
	// Fewer hedge crops than slots: fold the leftover percentage back
	// so the plan still sums to 100. A plan always carries at least the
	// primary allocation.
	pcts := alloc.Hedges[:len(hedges)]
	primaryPct := 100
	for _, p := range pcts {
		primaryPct -= p
	}

	plan := &entities.DiversificationPlan{
		RiskLevel: level,
		Primary: entities.CropShare{
			Crop:       primaryCrop,
			Percentage: primaryPct,
			AreaHa:     areaFor(primaryPct, totalAreaHa),
		},
		Rationale: rationaleFor(level),
	}
	for i, crop := range hedges {
		plan.DiversificationCrops = append(plan.DiversificationCrops, entities.CropShare{
			Crop:       crop,
			Percentage: pcts[i],
			AreaHa:     areaFor(pcts[i], totalAreaHa),
		})
	}
	return plan, nil
}

func pickHedges(region, primaryCrop string, n int) []string {
	pool := hedgeCrops[region]
	if len(pool) == 0 {
		pool = []string{genericHedge}
	}
	var out []string
	for _, c := range pool {
		if c == primaryCrop {
			continue
		}
		out = append(out, c)
		if len(out) == n {
			break
		}
	}
	if len(out) == 0 && n > 0 && primaryCrop != genericHedge {
		out = []string{genericHedge}
	}
	return out
}

func areaFor(pct int, total float64) float64 {
	return math.Round(float64(pct)/100*total*100) / 100 // 0.01 ha precision
}

func rationaleFor(level entities.RiskLevel) string {
	switch level {
	case entities.RiskHigh:
		return "High climate risk: half the area goes to drought-tolerant hedges to protect the season"
	case entities.RiskModerate:
		return "Moderate climate risk: a 30% hedge buffers rainfall shortfalls"
	default:
		return "Low climate risk: a small hedge plot keeps options open"
	}
}

package diversify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroclimate/entities"
	"agroclimate/pkg/season"
)

func TestPlan_PercentagesSumTo100(t *testing.T) {
	p := New()
	for _, level := range []entities.RiskLevel{entities.RiskLow, entities.RiskModerate, entities.RiskHigh} {
		plan, err := p.Plan(level, 2.0, "maize", season.RegionHighland)
		require.NoError(t, err)

		sum := plan.Primary.Percentage
		for _, c := range plan.DiversificationCrops {
			sum += c.Percentage
		}
		assert.Equal(t, 100, sum, "level %s", level)

		area := plan.Primary.AreaHa
		for _, c := range plan.DiversificationCrops {
			area += c.AreaHa
		}
		assert.InDelta(t, 2.0, area, 0.05, "level %s", level)
	}
}

func TestPlan_BandShapes(t *testing.T) {
	p := New()

	low, err := p.Plan(entities.RiskLow, 1.0, "maize", season.RegionHighland)
	require.NoError(t, err)
	assert.Equal(t, 90, low.Primary.Percentage)
	assert.Len(t, low.DiversificationCrops, 1)

	mod, err := p.Plan(entities.RiskModerate, 1.0, "maize", season.RegionHighland)
	require.NoError(t, err)
	assert.Equal(t, 70, mod.Primary.Percentage)
	assert.Len(t, mod.DiversificationCrops, 2)

	high, err := p.Plan(entities.RiskHigh, 1.0, "maize", season.RegionHighland)
	require.NoError(t, err)
	assert.Equal(t, 50, high.Primary.Percentage)
	assert.Len(t, high.DiversificationCrops, 2)
	assert.Equal(t, 30, high.DiversificationCrops[0].Percentage)
	assert.Equal(t, 20, high.DiversificationCrops[1].Percentage)
}

func TestPlan_HedgesExcludePrimary(t *testing.T) {
	p := New()
	plan, err := p.Plan(entities.RiskHigh, 1.0, "sorghum", season.RegionSemiArid)
	require.NoError(t, err)
	for _, c := range plan.DiversificationCrops {
		assert.NotEqual(t, "sorghum", c.Crop)
	}
}

// A region with no hedge list still gets at least one generic hedge.
func TestPlan_UnknownRegionFallsBack(t *testing.T) {
	p := New()
	plan, err := p.Plan(entities.RiskHigh, 1.0, "maize", "atlantis")
	require.NoError(t, err)
	require.NotEmpty(t, plan.DiversificationCrops)
	assert.Equal(t, genericHedge, plan.DiversificationCrops[0].Crop)

	sum := plan.Primary.Percentage
	for _, c := range plan.DiversificationCrops {
		sum += c.Percentage
	}
	assert.Equal(t, 100, sum)
}

func TestPlan_AreaPrecision(t *testing.T) {
	p := New()
	plan, err := p.Plan(entities.RiskModerate, 1.234, "maize", season.RegionHighland)
	require.NoError(t, err)
	for _, c := range append([]entities.CropShare{plan.Primary}, plan.DiversificationCrops...) {
		scaled := c.AreaHa * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9, "area should be 0.01 ha precision")
	}
}

func TestPlan_RejectsNonPositiveArea(t *testing.T) {
	p := New()
	_, err := p.Plan(entities.RiskLow, 0, "maize", season.RegionHighland)
	require.ErrorIs(t, err, entities.ErrInconsistentPlantingRecord)
}

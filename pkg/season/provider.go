package season

import (
	"context"
	"time"

	"agroclimate/entities"
)

// Provider supplies seasonal climate baselines for a location and
// period. Static tables today, a met-service client later; callers must
// treat it as fallible and boundedly latent.
type Provider interface {
	Baseline(ctx context.Context, loc entities.Location, period entities.DateRange) (entities.SeasonalBaseline, error)
}

// Season names. East African bimodal rainfall calendar.
const (
	LongRains  = "long_rains"  // Mar-May
	ShortRains = "short_rains" // Oct-Dec
	DryCool    = "dry_cool"    // Jun-Sep
	DryHot     = "dry_hot"     // Jan-Feb
)

// SeasonOf returns the season containing t.
func SeasonOf(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return LongRains
	case time.October, time.November, time.December:
		return ShortRains
	case time.June, time.July, time.August, time.September:
		return DryCool
	default:
		return DryHot
	}
}

// Region names used to key baseline and crop tables.
const (
	RegionHighland  = "highland"
	RegionLakeBasin = "lake_basin"
	RegionSemiArid  = "semi_arid"
	RegionCoastal   = "coastal"
	RegionDefault   = "default"
)

// RegionOf classifies coordinates into a rough agro-climatic region.
// Bands are coarse on purpose: the table is a baseline stand-in, not a
// forecast.
func RegionOf(loc entities.Location) string {
	if !loc.Valid() {
		return RegionDefault
	}
	switch {
	case loc.Lon >= 38.5:
		return RegionCoastal
	case loc.Lon < 35.5 && loc.Lat < 1.5:
		return RegionLakeBasin
	case loc.Lat >= 1.0 || loc.Lon >= 37.5:
		return RegionSemiArid
	default:
		return RegionHighland
	}
}

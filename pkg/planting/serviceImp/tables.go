package serviceImp

import "agroclimate/pkg/season"

// windowSpec is a crop's planting interval within a season, as
// month/day anchors resolved against a concrete year at lookup time.
type windowSpec struct {
	Season     string
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
	Rationale  string
}

// cropWindows keys planting intervals by crop, then region. Regions
// without an entry fall back to "default". This is a static policy
// table, not a forecast.
var cropWindows = map[string]map[string][]windowSpec{
	"maize": {
		season.RegionHighland: {
			{season.LongRains, 3, 15, 5, 10, "Main season: plant with the onset of the long rains"},
			{season.ShortRains, 10, 1, 11, 15, "Short-rains crop for early-maturing varieties"},
		},
		season.RegionLakeBasin: {
			{season.LongRains, 3, 1, 4, 30, "Lake-basin rains start earlier; plant by end of April"},
			{season.ShortRains, 9, 15, 11, 1, "Reliable second season around the lake"},
		},
		season.RegionSemiArid: {
			{season.LongRains, 3, 20, 4, 25, "Narrow window; rains are short and erratic"},
		},
		season.RegionDefault: {
			{season.LongRains, 3, 15, 5, 1, "Plant at the onset of the main rains"},
			{season.ShortRains, 10, 1, 11, 10, "Second season where short rains are reliable"},
		},
	},
	"beans": {
		season.RegionHighland: {
			{season.LongRains, 3, 20, 5, 20, "Beans tolerate a later start than maize"},
			{season.ShortRains, 10, 1, 11, 20, "Short-rains beans mature before the dry season"},
		},
		season.RegionDefault: {
			{season.LongRains, 3, 15, 5, 15, "Plant during the main rains"},
			{season.ShortRains, 10, 1, 11, 15, "Second-season planting"},
		},
	},
	"sorghum": {
		season.RegionSemiArid: {
			{season.LongRains, 3, 10, 5, 1, "Drought-tolerant staple for dry zones"},
			{season.ShortRains, 10, 5, 11, 20, "Handles erratic short rains well"},
		},
		season.RegionDefault: {
			{season.LongRains, 3, 10, 5, 10, "Plant early in the main rains"},
		},
	},
	"millet": {
		season.RegionDefault: {
			{season.LongRains, 3, 10, 4, 30, "Fast-maturing; early planting maximises the season"},
			{season.ShortRains, 10, 1, 11, 10, "Good fit for the short rains"},
		},
	},
	"cowpea": {
		season.RegionDefault: {
			{season.LongRains, 3, 15, 5, 20, "Flexible legume, wide window"},
			{season.ShortRains, 10, 1, 11, 25, "Short cycle fits the short rains"},
		},
	},
	"cassava": {
		season.RegionDefault: {
			{season.LongRains, 3, 1, 5, 31, "Cuttings establish anytime during the rains"},
		},
	},
	"groundnut": {
		season.RegionDefault: {
			{season.LongRains, 3, 15, 4, 30, "Needs steady early-season moisture"},
		},
	},
}

// alternativeCrops maps a crop to fast-maturing or drought-tolerant
// substitutes suggested when planting is late.
var alternativeCrops = map[string][]string{
	"maize":     {"sorghum", "millet", "cowpea"},
	"beans":     {"cowpea", "millet"},
	"sorghum":   {"millet", "cowpea"},
	"millet":    {"cowpea"},
	"cowpea":    {"millet"},
	"cassava":   {"sweet_potato", "cowpea"},
	"groundnut": {"cowpea", "millet"},
}

var genericAlternatives = []string{"cowpea", "millet"}

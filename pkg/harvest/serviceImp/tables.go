package serviceImp

// maturityTable holds days from planting to harvest readiness per crop
// and variety. The "" key is the crop default.
var maturityTable = map[string]map[string]int{
	"maize": {
		"":         90,
		"katumani": 90,
		"h513":     120,
		"h614":     150,
	},
	"beans": {
		"":           75,
		"rosecoco":   80,
		"mwitemania": 70,
	},
	"sorghum": {
		"":       100,
		"gadam":  90,
		"serena": 110,
	},
	"millet":    {"": 70},
	"cowpea":    {"": 65},
	"cassava":   {"": 300},
	"groundnut": {"": 110},
}

const genericMaturityDays = 90

// storageProfile is a crop's safe storage band. Readings outside either
// band mean the store is not ready for that crop.
type storageProfile struct {
	TempMinC    float64
	TempMaxC    float64
	HumidityMin float64
	HumidityMax float64
}

var storageProfiles = map[string]storageProfile{
	"maize":     {TempMinC: 5, TempMaxC: 27, HumidityMin: 30, HumidityMax: 65},
	"beans":     {TempMinC: 5, TempMaxC: 25, HumidityMin: 30, HumidityMax: 60},
	"sorghum":   {TempMinC: 5, TempMaxC: 30, HumidityMin: 30, HumidityMax: 65},
	"millet":    {TempMinC: 5, TempMaxC: 30, HumidityMin: 30, HumidityMax: 65},
	"cowpea":    {TempMinC: 5, TempMaxC: 28, HumidityMin: 25, HumidityMax: 60},
	"groundnut": {TempMinC: 5, TempMaxC: 25, HumidityMin: 25, HumidityMax: 55},
}

var genericStorageProfile = storageProfile{TempMinC: 5, TempMaxC: 28, HumidityMin: 30, HumidityMax: 65}

// dryingAdvice keys crop-appropriate post-harvest drying guidance by
// forecast conditions.
var dryingAdvice = map[string]string{
	"dry":      "Field-dry on raised racks; conditions favour quick drying",
	"moderate": "Dry in thin layers and turn frequently; watch for showers",
	"wet":      "Avoid open-air drying; use covered cribs or move harvest under roof immediately",
}

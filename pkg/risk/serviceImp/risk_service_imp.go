package serviceImp

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"agroclimate/config"
	"agroclimate/entities"
	obsrepo "agroclimate/pkg/observation/repository"
	"agroclimate/pkg/risk/service"
	"agroclimate/pkg/season"
)

// LCRS fusion weights. Fixed so recomputation from the same inputs is
// reproducible; changing them is a contract change.
const (
	wRainDeficit    = 0.25
	wSoilDeficit    = 0.20
	wSeasonDeficit  = 0.15
	wDrought        = 0.25
	wFlood          = 0.15
	neutralSeasonal = 0.5
)

type RiskSvc struct {
	obs     obsrepo.ObservationRepository
	seasons season.Provider
	th      config.Thresholds
	cache   *gocache.Cache
	now     func() time.Time
}

func New(obs obsrepo.ObservationRepository, seasons season.Provider, th config.Thresholds) service.RiskService {
	return &RiskSvc{
		obs:     obs,
		seasons: seasons,
		th:      th,
		cache:   gocache.New(th.ScoreTTL, 10*time.Minute),
		now:     time.Now,
	}
}

func (s *RiskSvc) Calculate(ctx context.Context, farmerID string, fieldID uint, loc entities.Location, forecastMonths int) (*entities.ClimateRiskScore, error) {
	if !loc.Valid() {
		return nil, entities.ErrInvalidLocation
	}
	if forecastMonths <= 0 {
		forecastMonths = 3
	}

	key := fmt.Sprintf("lcrs:%s:%d", farmerID, fieldID)
	if v, ok := s.cache.Get(key); ok {
		return v.(*entities.ClimateRiskScore), nil
	}

	now := s.now()
	degraded := 0

	// 1) Rain adequacy from recent nearby reports, recency-weighted.
	rainAdequacy, nReports := s.rainAdequacy(loc, now)

	// 2) Seasonal baseline over the forecast horizon. Degrades to a
	// neutral factor on timeout/failure rather than failing the call.
	period := entities.DateRange{Start: now, End: now.AddDate(0, forecastMonths, 0)}
	cctx, cancel := context.WithTimeout(ctx, s.th.CollaboratorTimeout)
	defer cancel()
	seasonal := neutralSeasonal
	baseline, err := s.seasons.Baseline(cctx, loc, period)
	if err != nil {
		log.Printf("[risk] baseline lookup degraded: %v", err)
		degraded++
	} else {
		seasonal = baseline.RainProbability
	}

	// No recent rain data: fall back to the seasonal baseline alone.
	if nReports == 0 {
		rainAdequacy = seasonal
		degraded++
	}

	// 3) Latest soil report -> SMI; missing is neutral, never fatal.
	soil := entities.NeutralSMI / 100
	if rep, err := s.obs.LatestSoil(farmerID, fieldID); err == nil {
		soil = rep.SMI / 100
	} else {
		degraded++
	}

	// 4) Derived sub-factors and the fixed weighted sum.
	drought := clamp01(1 - (0.5*rainAdequacy + 0.3*soil + 0.2*seasonal))
	flood := clamp01(0.6*rainAdequacy + 0.4*seasonal - 0.4*soil)

	factors := entities.RiskFactors{
		RainAdequacy:     round3(rainAdequacy),
		SoilMoisture:     round3(soil),
		SeasonalForecast: round3(seasonal),
		DroughtRisk:      round3(drought),
		FloodRisk:        round3(flood),
	}

	raw := wRainDeficit*(1-rainAdequacy) +
		wSoilDeficit*(1-soil) +
		wSeasonDeficit*(1-seasonal) +
		wDrought*drought +
		wFlood*flood
	score := math.Round(clamp01(raw)*1000) / 10 // one decimal, in [0,100]

	out := &entities.ClimateRiskScore{
		FarmerID:        farmerID,
		FieldID:         fieldID,
		Score:           score,
		RiskLevel:       s.Level(score),
		Factors:         factors,
		Recommendations: recommend(s.Level(score), factors),
		Confidence:      confidenceFor(nReports, degraded),
		ComputedAt:      now,
		ValidUntil:      now.Add(s.th.ScoreTTL),
	}
	s.cache.Set(key, out, s.th.ScoreTTL)
	return out, nil
}

// Level maps a score onto its band. Bands are the public contract other
// components branch on.
func (s *RiskSvc) Level(score float64) entities.RiskLevel {
	switch {
	case score <= s.th.RiskBandLow:
		return entities.RiskLow
	case score <= s.th.RiskBandModerate:
		return entities.RiskModerate
	default:
		return entities.RiskHigh
	}
}

// rainAdequacy aggregates nearby reports with exponentially decaying
// recency weights (half-life th.RainHalfLifeDays). The noisy-OR form
// keeps the factor in [0,1] and monotone: an extra report never lowers
// adequacy, and yesterday's report always outweighs one from three
// weeks ago.
func (s *RiskSvc) rainAdequacy(loc entities.Location, now time.Time) (float64, int) {
	maxAge := time.Duration(s.th.RainWindowDays) * 24 * time.Hour
	reports, err := s.obs.RecentRain(loc, s.th.RainRadiusKM, maxAge)
	if err != nil {
		log.Printf("[risk] recent rain lookup failed: %v", err)
		return 0, 0
	}
	if len(reports) == 0 {
		return 0, 0
	}
	miss := 1.0
	for _, rep := range reports {
		intensity, ok := rep.Amount.Intensity()
		if !ok {
			continue
		}
		ageDays := now.Sub(rep.Timestamp).Hours() / 24
		if ageDays < 0 {
			ageDays = 0
		}
		w := math.Pow(0.5, ageDays/s.th.RainHalfLifeDays)
		miss *= 1 - w*intensity
	}
	return 1 - miss, len(reports)
}

func recommend(level entities.RiskLevel, f entities.RiskFactors) []string {
	var recs []string
	switch level {
	case entities.RiskHigh:
		recs = append(recs, "High climate risk: diversify into drought-tolerant crops this season")
	case entities.RiskModerate:
		recs = append(recs, "Moderate climate risk: keep a portion of the field for a hedge crop")
	default:
		recs = append(recs, "Conditions look favourable: proceed with the planned crop")
	}
	if f.DroughtRisk >= f.FloodRisk && f.DroughtRisk > 0.5 {
		recs = append(recs,
			"Drought pressure dominates: mulch to retain soil moisture",
			"Consider early-maturing varieties to beat the dry spell")
	} else if f.FloodRisk > 0.5 {
		recs = append(recs,
			"Flood pressure dominates: clear drainage channels before the rains",
			"Avoid low-lying plots for moisture-sensitive crops")
	}
	if f.SoilMoisture < 0.3 {
		recs = append(recs, "Soil reported dry: delay planting until after the next rains")
	}
	return recs
}

func confidenceFor(nReports, degraded int) string {
	switch {
	case degraded == 0 && nReports >= 3:
		return "high"
	case degraded <= 1:
		return "medium"
	default:
		return "low"
	}
}

func clamp01(v float64) float64 { return math.Max(0, math.Min(1, v)) }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

package serviceImp

import (
	"context"
	"fmt"
	"log"
	"time"

	"agroclimate/config"
	"agroclimate/entities"
	"agroclimate/pkg/harvest/service"
	"agroclimate/pkg/season"
	"agroclimate/pkg/storage"
)

type HarvestSvc struct {
	seasons season.Provider
	store   storage.Collaborator
	th      config.Thresholds
	now     func() time.Time
}

func New(seasons season.Provider, store storage.Collaborator, th config.Thresholds) service.HarvestService {
	return &HarvestSvc{seasons: seasons, store: store, th: th, now: time.Now}
}

func (s *HarvestSvc) MaturityDays(crop, variety string) int {
	varieties, ok := maturityTable[crop]
	if !ok {
		return genericMaturityDays
	}
	if d, ok := varieties[variety]; ok {
		return d
	}
	return varieties[""]
}

func (s *HarvestSvc) Predict(ctx context.Context, p *entities.PlantingRecord, loc entities.Location, sensorID string) (*entities.HarvestPrediction, error) {
	if p == nil || p.PlantingDate.IsZero() {
		return nil, fmt.Errorf("%w: planting date is required", entities.ErrInconsistentPlantingRecord)
	}

	maturity := s.MaturityDays(p.Crop, p.Variety)
	_, knownCrop := maturityTable[p.Crop]

	predicted := p.PlantingDate.AddDate(0, 0, maturity)
	window := entities.DateRange{
		Start: predicted.AddDate(0, 0, -s.th.HarvestWindowBufferDays),
		End:   predicted.AddDate(0, 0, s.th.HarvestWindowBufferDays),
	}

	weather := s.outlook(ctx, loc, window, p.Crop)
	storageStatus := s.storageStatus(ctx, sensorID, p.Crop)

	level, msg := composeAlert(p.Crop, weather, storageStatus)

	out := &entities.HarvestPrediction{
		FarmerID:      p.FarmerID,
		FieldID:       p.FieldID,
		Crop:          p.Crop,
		Variety:       p.Variety,
		PredictedDate: predicted,
		HarvestWindow: window,
		MaturityDays:  maturity,
		Weather:       weather,
		Storage:       storageStatus,
		AlertMessage:  msg,
		AlertLevel:    level,
		ActionItems:   actionItems(weather, storageStatus),
		Confidence:    predictionConfidence(knownCrop, storageStatus),
		ComputedAt:    s.now(),
	}
	return out, nil
}

// outlook queries the seasonal baseline for the harvest window and
// degrades to a neutral moderate outlook on failure.
func (s *HarvestSvc) outlook(ctx context.Context, loc entities.Location, window entities.DateRange, crop string) entities.WeatherOutlook {
	cctx, cancel := context.WithTimeout(ctx, s.th.CollaboratorTimeout)
	defer cancel()

	baseline, err := s.seasons.Baseline(cctx, loc, window)
	if err != nil {
		log.Printf("[harvest] seasonal lookup degraded: %v", err)
		return entities.WeatherOutlook{
			Conditions:      "moderate",
			RainProbability: 0.5,
			Advice:          dryingAdvice["moderate"],
		}
	}
	advice, ok := dryingAdvice[baseline.Conditions]
	if !ok {
		advice = dryingAdvice["moderate"]
	}
	return entities.WeatherOutlook{
		Conditions:      baseline.Conditions,
		RainProbability: baseline.RainProbability,
		Advice:          advice,
	}
}

// storageStatus evaluates the sensor's last reading against the crop's
// safe storage band. No sensor or no data means unknown, never ready
// and never critical on its own.
func (s *HarvestSvc) storageStatus(ctx context.Context, sensorID, crop string) entities.StorageStatus {
	if sensorID == "" || s.store == nil {
		return entities.StorageStatus{Known: false}
	}
	cctx, cancel := context.WithTimeout(ctx, s.th.CollaboratorTimeout)
	defer cancel()

	rd, err := s.store.LatestReading(cctx, sensorID)
	if err != nil {
		log.Printf("[harvest] storage reading unavailable for %s: %v", sensorID, err)
		return entities.StorageStatus{Known: false}
	}

	profile, ok := storageProfiles[crop]
	if !ok {
		profile = genericStorageProfile
	}

	st := entities.StorageStatus{
		Known:       true,
		Ready:       true,
		Temperature: rd.Temperature,
		Humidity:    rd.Humidity,
	}
	if rd.Temperature > profile.TempMaxC {
		st.Ready = false
		st.Issues = append(st.Issues, fmt.Sprintf("Temperature too high (%.1f°C, max %.1f°C)", rd.Temperature, profile.TempMaxC))
		st.Recommendations = append(st.Recommendations, "Increase ventilation in the store")
	}
	if rd.Temperature < profile.TempMinC {
		st.Ready = false
		st.Issues = append(st.Issues, fmt.Sprintf("Temperature too low (%.1f°C, min %.1f°C)", rd.Temperature, profile.TempMinC))
		st.Recommendations = append(st.Recommendations, "Insulate the store against cold nights")
	}
	if rd.Humidity > profile.HumidityMax {
		st.Ready = false
		st.Issues = append(st.Issues, fmt.Sprintf("Humidity too high (%.0f%%, max %.0f%%)", rd.Humidity, profile.HumidityMax))
		st.Recommendations = append(st.Recommendations, "Dry the store and check for leaks before loading")
	}
	if rd.Humidity < profile.HumidityMin {
		st.Ready = false
		st.Issues = append(st.Issues, fmt.Sprintf("Humidity too low (%.0f%%, min %.0f%%)", rd.Humidity, profile.HumidityMin))
		st.Recommendations = append(st.Recommendations, "Over-dry grain cracks; monitor moisture before shelling")
	}
	return st
}

// composeAlert merges weather and storage risk. Both adverse is
// critical, one adverse is warning, otherwise informational.
func composeAlert(crop string, w entities.WeatherOutlook, st entities.StorageStatus) (entities.AlertLevel, string) {
	wetRisk := w.Conditions == "wet"
	storageRisk := st.Known && !st.Ready

	switch {
	case wetRisk && storageRisk:
		return entities.AlertCritical,
			fmt.Sprintf("Wet conditions expected at %s harvest and the store is not ready. Fix storage before harvesting.", crop)
	case storageRisk:
		return entities.AlertWarning,
			fmt.Sprintf("Storage is not ready for %s. Address the issues before the harvest window.", crop)
	case wetRisk:
		return entities.AlertWarning,
			fmt.Sprintf("Wet conditions expected during the %s harvest window. Plan covered drying.", crop)
	case !st.Known:
		return entities.AlertInfo,
			fmt.Sprintf("Harvest window computed for %s. Storage condition unknown; add a sensor reading for a full check.", crop)
	default:
		return entities.AlertInfo,
			fmt.Sprintf("Conditions look good for the %s harvest window.", crop)
	}
}

// actionItems concatenates weather- and storage-driven steps,
// de-duplicated in order.
func actionItems(w entities.WeatherOutlook, st entities.StorageStatus) []string {
	var items []string
	if w.Advice != "" {
		items = append(items, w.Advice)
	}
	if w.Conditions == "wet" {
		items = append(items, "Harvest early in the window if a dry spell opens")
	}
	items = append(items, st.Recommendations...)
	if !st.Known {
		items = append(items, "Submit a storage sensor reading to verify the store before harvest")
	}

	seen := map[string]struct{}{}
	out := items[:0]
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func predictionConfidence(knownCrop bool, st entities.StorageStatus) string {
	switch {
	case knownCrop && st.Known:
		return "high"
	case knownCrop || st.Known:
		return "medium"
	default:
		return "low"
	}
}

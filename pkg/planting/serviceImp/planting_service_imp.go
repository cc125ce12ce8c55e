package serviceImp

import (
	"context"
	"fmt"
	"log"
	"time"

	"agroclimate/config"
	"agroclimate/entities"
	"agroclimate/pkg/diversify"
	"agroclimate/pkg/planting/repository"
	"agroclimate/pkg/planting/service"
	riskservice "agroclimate/pkg/risk/service"
	"agroclimate/pkg/season"
)

type PlantingSvc struct {
	repo    repository.PlantingRepository
	risk    riskservice.RiskService
	planner diversify.Planner
	th      config.Thresholds
}

func New(repo repository.PlantingRepository, risk riskservice.RiskService, planner diversify.Planner, th config.Thresholds) service.PlantingService {
	return &PlantingSvc{repo: repo, risk: risk, planner: planner, th: th}
}

func (s *PlantingSvc) Window(crop string, loc entities.Location, asOf time.Time) (entities.PlantingWindow, error) {
	if !loc.Valid() {
		return entities.PlantingWindow{}, entities.ErrInvalidLocation
	}
	region := season.RegionOf(loc)

	regions, ok := cropWindows[crop]
	if !ok {
		// Unknown crop: generic long-rains window, low confidence.
		return genericWindow(crop, region, asOf), nil
	}
	specs, ok := regions[region]
	if !ok {
		specs = regions[season.RegionDefault]
	}
	if len(specs) == 0 {
		return genericWindow(crop, region, asOf), nil
	}

	spec, start, end := nearestWindow(specs, asOf)
	return entities.PlantingWindow{
		Crop:       crop,
		Region:     region,
		Season:     spec.Season,
		Start:      start,
		End:        end,
		Rationale:  spec.Rationale,
		Confidence: "high",
	}, nil
}

func (s *PlantingSvc) CheckStatus(ctx context.Context, farmerID string, fieldID uint, crop string, loc entities.Location, asOf time.Time) (*entities.PlantingStatus, error) {
	w, err := s.Window(crop, loc, asOf)
	if err != nil {
		return nil, err
	}

	day := 24 * time.Hour
	st := &entities.PlantingStatus{Window: w}
	switch {
	case asOf.Before(w.Start):
		st.Status = entities.PlantingEarly
		st.DaysDifference = -int(w.Start.Sub(asOf) / day)
		st.Message = fmt.Sprintf("The %s window opens in %d days. Prepare land and seed now.", crop, -st.DaysDifference)
	case !asOf.After(w.End):
		st.Status = entities.PlantingOptimal
		st.DaysDifference = 0
		st.Message = fmt.Sprintf("You are inside the optimal %s planting window. Plant now.", crop)
	default:
		past := int(asOf.Sub(w.End) / day)
		st.DaysDifference = past
		if past <= s.th.GraceDaysLate {
			st.Status = entities.PlantingLate
			st.Message = fmt.Sprintf("You are %d days past the %s window. A fast-maturing variety can still work.", past, crop)
		} else {
			st.Status = entities.PlantingVeryLate
			st.Message = fmt.Sprintf("You are %d days past the %s window. Switch crops or wait for the next season.", past, crop)
		}
		st.AlternativeCrops = alternativesFor(crop)
	}

	if st.Status == entities.PlantingVeryLate {
		st.DiversificationHint = s.diversificationAdvice(ctx, farmerID, fieldID, crop, loc)
	}
	return st, nil
}

func (s *PlantingSvc) Record(p *entities.PlantingRecord) error {
	if p.AreaHa <= 0 {
		return fmt.Errorf("%w: area must be positive", entities.ErrInconsistentPlantingRecord)
	}
	if p.Crop == "" {
		return fmt.Errorf("%w: crop is required", entities.ErrInconsistentPlantingRecord)
	}
	if p.PlantingDate.After(time.Now().AddDate(0, 0, 1)) {
		return fmt.Errorf("%w: planting date is in the future", entities.ErrInconsistentPlantingRecord)
	}
	return s.repo.Create(p)
}

// diversificationAdvice is best-effort: a failed risk lookup degrades
// to a moderate-risk plan rather than dropping the advice.
func (s *PlantingSvc) diversificationAdvice(ctx context.Context, farmerID string, fieldID uint, crop string, loc entities.Location) *entities.DiversificationPlan {
	level := entities.RiskModerate
	if score, err := s.risk.Calculate(ctx, farmerID, fieldID, loc, 3); err == nil {
		level = score.RiskLevel
	} else {
		log.Printf("[planting] risk lookup degraded for advice: %v", err)
	}
	plan, err := s.planner.Plan(level, 1.0, crop, season.RegionOf(loc))
	if err != nil {
		return nil
	}
	plan.FarmerID = farmerID
	plan.FieldID = fieldID
	return plan
}

func alternativesFor(crop string) []string {
	if alts, ok := alternativeCrops[crop]; ok {
		return alts
	}
	return genericAlternatives
}

// nearestWindow resolves the season specs against concrete years around
// asOf and picks the window closest to it: the containing window when
// one exists, otherwise the one with the smallest gap.
func nearestWindow(specs []windowSpec, asOf time.Time) (windowSpec, time.Time, time.Time) {
	type cand struct {
		spec       windowSpec
		start, end time.Time
		dist       time.Duration
	}
	var best *cand
	for _, sp := range specs {
		for _, year := range []int{asOf.Year() - 1, asOf.Year(), asOf.Year() + 1} {
			start := time.Date(year, time.Month(sp.StartMonth), sp.StartDay, 0, 0, 0, 0, asOf.Location())
			end := time.Date(year, time.Month(sp.EndMonth), sp.EndDay, 0, 0, 0, 0, asOf.Location())
			if end.Before(start) {
				end = end.AddDate(1, 0, 0) // window wraps the year boundary
			}
			var dist time.Duration
			switch {
			case asOf.Before(start):
				dist = start.Sub(asOf)
			case asOf.After(end):
				dist = asOf.Sub(end)
			default:
				dist = 0
			}
			if best == nil || dist < best.dist {
				best = &cand{spec: sp, start: start, end: end, dist: dist}
			}
		}
	}
	return best.spec, best.start, best.end
}

func genericWindow(crop, region string, asOf time.Time) entities.PlantingWindow {
	spec, start, end := nearestWindow([]windowSpec{
		{season.LongRains, 3, 15, 5, 15, "Generic window: plant with the onset of the main rains"},
		{season.ShortRains, 10, 1, 11, 15, "Generic second-season window"},
	}, asOf)
	return entities.PlantingWindow{
		Crop:       crop,
		Region:     region,
		Season:     spec.Season,
		Start:      start,
		End:        end,
		Rationale:  spec.Rationale,
		Confidence: "low",
	}
}

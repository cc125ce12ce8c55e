package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroclimate/config"
	"agroclimate/entities"
)

type fakeObs struct {
	rain []entities.RainReport
	soil *entities.SoilMoistureReport
}

func (f *fakeObs) RecordRain(*entities.RainReport) error         { return nil }
func (f *fakeObs) RecordSoil(*entities.SoilMoistureReport) error { return nil }

func (f *fakeObs) RecentRain(entities.Location, float64, time.Duration) ([]entities.RainReport, error) {
	return f.rain, nil
}

func (f *fakeObs) LatestSoil(string, uint) (*entities.SoilMoistureReport, error) {
	if f.soil == nil {
		return nil, errors.New("record not found")
	}
	return f.soil, nil
}

type fakeSeasons struct {
	baseline entities.SeasonalBaseline
	err      error
}

func (f *fakeSeasons) Baseline(context.Context, entities.Location, entities.DateRange) (entities.SeasonalBaseline, error) {
	return f.baseline, f.err
}

var testLoc = entities.Location{Lat: -0.42, Lon: 36.95}

func newTestSvc(obs *fakeObs, seasons *fakeSeasons) *RiskSvc {
	return New(obs, seasons, config.DefaultThresholds()).(*RiskSvc)
}

func TestCalculate_ScoreWithinBounds(t *testing.T) {
	now := time.Now()
	inputs := []*fakeObs{
		{},
		{rain: []entities.RainReport{{Amount: entities.RainHeavy, Timestamp: now}}},
		{soil: &entities.SoilMoistureReport{SMI: 25}},
		{
			rain: []entities.RainReport{
				{Amount: entities.RainNone, Timestamp: now},
				{Amount: entities.RainNone, Timestamp: now.AddDate(0, 0, -10)},
			},
			soil: &entities.SoilMoistureReport{SMI: 25},
		},
	}
	for _, obs := range inputs {
		svc := newTestSvc(obs, &fakeSeasons{baseline: entities.SeasonalBaseline{RainProbability: 0.1, Conditions: "dry"}})
		score, err := svc.Calculate(context.Background(), "f1", 1, testLoc, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score.Score, 0.0)
		assert.LessOrEqual(t, score.Score, 100.0)
		assert.Equal(t, svc.Level(score.Score), score.RiskLevel)
	}
}

func TestLevel_Bands(t *testing.T) {
	svc := newTestSvc(&fakeObs{}, &fakeSeasons{})
	assert.Equal(t, entities.RiskLow, svc.Level(0))
	assert.Equal(t, entities.RiskLow, svc.Level(30))
	assert.Equal(t, entities.RiskModerate, svc.Level(30.1))
	assert.Equal(t, entities.RiskModerate, svc.Level(60))
	assert.Equal(t, entities.RiskHigh, svc.Level(60.1))
	assert.Equal(t, entities.RiskHigh, svc.Level(100))
}

func TestCalculate_InvalidLocation(t *testing.T) {
	svc := newTestSvc(&fakeObs{}, &fakeSeasons{})
	_, err := svc.Calculate(context.Background(), "f1", 1, entities.Location{}, 3)
	require.ErrorIs(t, err, entities.ErrInvalidLocation)
}

// Adding a rain report must never lower the rain adequacy factor.
func TestRainAdequacy_Monotone(t *testing.T) {
	now := time.Now()
	base := []entities.RainReport{
		{Amount: entities.RainLight, Timestamp: now.AddDate(0, 0, -5)},
		{Amount: entities.RainModerate, Timestamp: now.AddDate(0, 0, -12)},
	}
	extras := []entities.RainReport{
		{Amount: entities.RainNone, Timestamp: now},
		{Amount: entities.RainLight, Timestamp: now.AddDate(0, 0, -20)},
		{Amount: entities.RainHeavy, Timestamp: now},
	}

	obs := &fakeObs{rain: base}
	svc := newTestSvc(obs, &fakeSeasons{})
	before, _ := svc.rainAdequacy(testLoc, now)

	for _, extra := range extras {
		obs.rain = append(base, extra)
		after, _ := svc.rainAdequacy(testLoc, now)
		assert.GreaterOrEqual(t, after, before, "adding %s report lowered adequacy", extra.Amount)
	}
}

// A report from yesterday must influence the aggregate more than the
// same report from three weeks ago.
func TestRainAdequacy_RecencyWeighting(t *testing.T) {
	now := time.Now()
	fresh := &fakeObs{rain: []entities.RainReport{{Amount: entities.RainModerate, Timestamp: now.AddDate(0, 0, -1)}}}
	stale := &fakeObs{rain: []entities.RainReport{{Amount: entities.RainModerate, Timestamp: now.AddDate(0, 0, -21)}}}

	seasons := &fakeSeasons{}
	freshVal, _ := newTestSvc(fresh, seasons).rainAdequacy(testLoc, now)
	staleVal, _ := newTestSvc(stale, seasons).rainAdequacy(testLoc, now)
	assert.Greater(t, freshVal, staleVal)
}

// No recent rain data: the factor falls back to the seasonal baseline
// and the computation still succeeds.
func TestCalculate_NoRainFallsBackToBaseline(t *testing.T) {
	svc := newTestSvc(&fakeObs{}, &fakeSeasons{baseline: entities.SeasonalBaseline{RainProbability: 0.8, Conditions: "wet"}})
	score, err := svc.Calculate(context.Background(), "f1", 1, testLoc, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, score.Factors.RainAdequacy, 0.001)
	assert.NotEqual(t, "high", score.Confidence)
}

func TestCalculate_BaselineFailureDegrades(t *testing.T) {
	svc := newTestSvc(
		&fakeObs{soil: &entities.SoilMoistureReport{SMI: 60}},
		&fakeSeasons{err: errors.New("timeout")},
	)
	score, err := svc.Calculate(context.Background(), "f1", 1, testLoc, 3)
	require.NoError(t, err, "baseline failure must not fail the advisory")
	assert.InDelta(t, neutralSeasonal, score.Factors.SeasonalForecast, 0.001)
	assert.Equal(t, "low", score.Confidence)
}

func TestCalculate_CachesWithinValidity(t *testing.T) {
	svc := newTestSvc(
		&fakeObs{rain: []entities.RainReport{{Amount: entities.RainModerate, Timestamp: time.Now()}}},
		&fakeSeasons{baseline: entities.SeasonalBaseline{RainProbability: 0.5}},
	)
	first, err := svc.Calculate(context.Background(), "f1", 1, testLoc, 3)
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), "f1", 1, testLoc, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ComputedAt, second.ComputedAt, "second call within validity should be served from cache")
	assert.True(t, first.ValidUntil.After(first.ComputedAt))
}

// End-to-end over realistic farmer inputs: damp soil plus moderate
// recent rain in a mid-risk region lands in the low or moderate band.
func TestCalculate_DampSoilModerateRain(t *testing.T) {
	svc := newTestSvc(
		&fakeObs{
			rain: []entities.RainReport{{Amount: entities.RainModerate, Timestamp: time.Now().Add(-6 * time.Hour)}},
			soil: &entities.SoilMoistureReport{SMI: 60},
		},
		&fakeSeasons{baseline: entities.SeasonalBaseline{RainProbability: 0.45, Conditions: "moderate"}},
	)
	score, err := svc.Calculate(context.Background(), "f1", 1, testLoc, 3)
	require.NoError(t, err)
	assert.Contains(t, []entities.RiskLevel{entities.RiskLow, entities.RiskModerate}, score.RiskLevel)
	assert.NotEmpty(t, score.Recommendations)
}

func TestRecommendations_DominantFactor(t *testing.T) {
	f := entities.RiskFactors{DroughtRisk: 0.8, FloodRisk: 0.2, SoilMoisture: 0.25}
	recs := recommend(entities.RiskHigh, f)
	require.NotEmpty(t, recs)
	joined := ""
	for _, r := range recs {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "Drought")
}

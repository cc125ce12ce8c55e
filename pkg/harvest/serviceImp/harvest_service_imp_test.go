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

type fakeSeasons struct {
	baseline entities.SeasonalBaseline
	err      error
}

func (f *fakeSeasons) Baseline(context.Context, entities.Location, entities.DateRange) (entities.SeasonalBaseline, error) {
	return f.baseline, f.err
}

type fakeStore struct {
	reading *entities.StorageReading
	err     error
}

func (f *fakeStore) LatestReading(context.Context, string) (*entities.StorageReading, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reading, nil
}

var testLoc = entities.Location{Lat: -0.42, Lon: 36.95}

func maizePlanting(d time.Time) *entities.PlantingRecord {
	return &entities.PlantingRecord{FarmerID: "f1", FieldID: 1, Crop: "maize", PlantingDate: d, AreaHa: 1}
}

func drySeasons() *fakeSeasons {
	return &fakeSeasons{baseline: entities.SeasonalBaseline{RainProbability: 0.15, Conditions: "dry", Confidence: "high"}}
}

func wetSeasons() *fakeSeasons {
	return &fakeSeasons{baseline: entities.SeasonalBaseline{RainProbability: 0.75, Conditions: "wet", Confidence: "high"}}
}

func goodReading() *fakeStore {
	return &fakeStore{reading: &entities.StorageReading{Temperature: 20, Humidity: 50, Timestamp: time.Now()}}
}

func TestPredict_DateArithmetic(t *testing.T) {
	svc := New(drySeasons(), goodReading(), config.DefaultThresholds())
	planted := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	pred, err := svc.Predict(context.Background(), maizePlanting(planted), testLoc, "s1")
	require.NoError(t, err)

	assert.Equal(t, 90, pred.MaturityDays)
	assert.Equal(t, planted.AddDate(0, 0, 90), pred.PredictedDate)
	assert.Equal(t, pred.PredictedDate.AddDate(0, 0, -7), pred.HarvestWindow.Start)
	assert.Equal(t, pred.PredictedDate.AddDate(0, 0, 7), pred.HarvestWindow.End)
}

func TestPredict_VarietyMaturity(t *testing.T) {
	svc := New(drySeasons(), goodReading(), config.DefaultThresholds())
	p := maizePlanting(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	p.Variety = "h614"

	pred, err := svc.Predict(context.Background(), p, testLoc, "s1")
	require.NoError(t, err)
	assert.Equal(t, 150, pred.MaturityDays)
}

func TestPredict_UnknownCropUsesGenericMaturity(t *testing.T) {
	svc := New(drySeasons(), goodReading(), config.DefaultThresholds())
	p := maizePlanting(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	p.Crop = "quinoa"

	pred, err := svc.Predict(context.Background(), p, testLoc, "s1")
	require.NoError(t, err)
	assert.Equal(t, genericMaturityDays, pred.MaturityDays)
	assert.NotEqual(t, "high", pred.Confidence)
}

func TestPredict_StorageTooHotNotReady(t *testing.T) {
	hot := &fakeStore{reading: &entities.StorageReading{Temperature: 33, Humidity: 50}}
	svc := New(drySeasons(), hot, config.DefaultThresholds())

	pred, err := svc.Predict(context.Background(), maizePlanting(time.Now().AddDate(0, 0, -80)), testLoc, "s1")
	require.NoError(t, err)
	require.True(t, pred.Storage.Known)
	assert.False(t, pred.Storage.Ready)
	require.NotEmpty(t, pred.Storage.Issues)
	assert.Contains(t, pred.Storage.Issues[0], "Temperature too high")
	assert.Equal(t, entities.AlertWarning, pred.AlertLevel)
}

func TestPredict_HotStorePlusWetForecastIsCritical(t *testing.T) {
	hot := &fakeStore{reading: &entities.StorageReading{Temperature: 33, Humidity: 70}}
	svc := New(wetSeasons(), hot, config.DefaultThresholds())

	pred, err := svc.Predict(context.Background(), maizePlanting(time.Now().AddDate(0, 0, -80)), testLoc, "s1")
	require.NoError(t, err)
	assert.Equal(t, entities.AlertCritical, pred.AlertLevel)
	assert.False(t, pred.Storage.Ready)
	assert.Equal(t, "wet", pred.Weather.Conditions)
}

func TestPredict_NoSensorMeansUnknown(t *testing.T) {
	svc := New(wetSeasons(), goodReading(), config.DefaultThresholds())

	pred, err := svc.Predict(context.Background(), maizePlanting(time.Now().AddDate(0, 0, -80)), testLoc, "")
	require.NoError(t, err)
	assert.False(t, pred.Storage.Known)
	assert.False(t, pred.Storage.Ready)
	// Unknown storage never escalates to critical on its own.
	assert.Equal(t, entities.AlertWarning, pred.AlertLevel)
}

func TestPredict_CollaboratorFailureDegradesToUnknown(t *testing.T) {
	broken := &fakeStore{err: errors.New("gateway timeout")}
	svc := New(drySeasons(), broken, config.DefaultThresholds())

	pred, err := svc.Predict(context.Background(), maizePlanting(time.Now().AddDate(0, 0, -80)), testLoc, "s1")
	require.NoError(t, err, "storage failure must not fail the prediction")
	assert.False(t, pred.Storage.Known)
	assert.Equal(t, entities.AlertInfo, pred.AlertLevel)
}

func TestPredict_SeasonalFailureDegradesToNeutral(t *testing.T) {
	svc := New(&fakeSeasons{err: errors.New("timeout")}, goodReading(), config.DefaultThresholds())

	pred, err := svc.Predict(context.Background(), maizePlanting(time.Now().AddDate(0, 0, -80)), testLoc, "s1")
	require.NoError(t, err)
	assert.Equal(t, "moderate", pred.Weather.Conditions)
	assert.InDelta(t, 0.5, pred.Weather.RainProbability, 0.001)
}

func TestPredict_RejectsMissingPlantingDate(t *testing.T) {
	svc := New(drySeasons(), goodReading(), config.DefaultThresholds())
	_, err := svc.Predict(context.Background(), &entities.PlantingRecord{Crop: "maize"}, testLoc, "")
	require.ErrorIs(t, err, entities.ErrInconsistentPlantingRecord)
}

func TestPredict_ActionItemsDeduplicated(t *testing.T) {
	svc := New(wetSeasons(), &fakeStore{err: errors.New("no data")}, config.DefaultThresholds())

	pred, err := svc.Predict(context.Background(), maizePlanting(time.Now().AddDate(0, 0, -80)), testLoc, "s1")
	require.NoError(t, err)
	seen := map[string]int{}
	for _, it := range pred.ActionItems {
		seen[it]++
	}
	for it, n := range seen {
		assert.Equal(t, 1, n, "duplicated action item: %s", it)
	}
	assert.NotEmpty(t, pred.ActionItems)
}

func TestMaturityDays_Defaults(t *testing.T) {
	svc := New(drySeasons(), goodReading(), config.DefaultThresholds())
	assert.Equal(t, 90, svc.MaturityDays("maize", ""))
	assert.Equal(t, 90, svc.MaturityDays("maize", "unlisted-variety"))
	assert.Equal(t, genericMaturityDays, svc.MaturityDays("quinoa", ""))
}

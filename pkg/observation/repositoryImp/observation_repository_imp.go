package repositoryImp

import (
	"math"
	"time"

	"gorm.io/gorm"

	"agroclimate/entities"
	"agroclimate/pkg/observation/repository"
)

type obsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ObservationRepository { return &obsRepo{db} }

func (r *obsRepo) RecordRain(rep *entities.RainReport) error { return r.db.Create(rep).Error }

func (r *obsRepo) RecordSoil(rep *entities.SoilMoistureReport) error { return r.db.Create(rep).Error }

func (r *obsRepo) RecentRain(loc entities.Location, radiusKM float64, maxAge time.Duration) ([]entities.RainReport, error) {
	var rows []entities.RainReport
	cut := time.Now().Add(-maxAge)
	// Coarse bounding box in SQL, exact haversine in Go. Data volumes
	// here are crowdsourced farmer reports, not telemetry; no spatial
	// index needed.
	latPad := radiusKM / 111.0
	lonPad := latPad / math.Max(0.1, math.Cos(loc.Lat*math.Pi/180))
	q := r.db.Where("timestamp >= ?", cut).
		Where("lat BETWEEN ? AND ?", loc.Lat-latPad, loc.Lat+latPad).
		Where("lon BETWEEN ? AND ?", loc.Lon-lonPad, loc.Lon+lonPad)
	if err := q.Order("timestamp DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := rows[:0]
	for _, rep := range rows {
		if haversineKM(loc.Lat, loc.Lon, rep.Lat, rep.Lon) <= radiusKM {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *obsRepo) LatestSoil(farmerID string, fieldID uint) (*entities.SoilMoistureReport, error) {
	var rep entities.SoilMoistureReport
	if err := r.db.Where("farmer_id = ? AND field_id = ?", farmerID, fieldID).
		Order("timestamp DESC").First(&rep).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

const earthRadiusKM = 6371.0

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

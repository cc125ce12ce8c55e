package entities

import "time"

// StorageSensor is a registered storage-location sensor.
type StorageSensor struct {
	SensorID  string    `gorm:"primaryKey" json:"sensor_id"`
	FarmerID  string    `gorm:"index" json:"farmer_id"`
	Label     string    `json:"label"`
	CreatedAt time.Time
}

// StorageReading is one temperature/humidity telemetry sample from a
// storage sensor.
type StorageReading struct {
	ReadingID   uint      `gorm:"primaryKey" json:"reading_id"`
	SensorID    string    `gorm:"index" json:"sensor_id"`
	Temperature float64   `json:"temperature"` // Celsius
	Humidity    float64   `json:"humidity"`    // percent RH
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
	CreatedAt   time.Time
}

// SeasonalBaseline is a region/period climate baseline, a stand-in for
// an external met-service forecast.
type SeasonalBaseline struct {
	Region          string  `json:"region"`
	Season          string  `json:"season"`
	RainProbability float64 `json:"rain_probability"` // [0,1]
	Conditions      string  `json:"conditions"`       // dry|moderate|wet
	Confidence      string  `json:"confidence"`       // high|medium|low
}

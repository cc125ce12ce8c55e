package entities

import "time"

type Field struct {
	FieldID     uint    `gorm:"primaryKey" json:"field_id"`
	FarmerID    string  `json:"farmer_id" gorm:"index"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	AreaHa      float64 `json:"area_ha"`
	PrimaryCrop string  `json:"primary_crop"`
	SoilTexture string  `json:"soil_texture"` // sand|loam|clay

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location is a geographic point. Zero-value coordinates (the 0,0 point
// off the Gulf of Guinea) are treated as missing.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l Location) Valid() bool {
	if l.Lat == 0 && l.Lon == 0 {
		return false
	}
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

func (f *Field) Location() Location { return Location{Lat: f.Lat, Lon: f.Lon} }

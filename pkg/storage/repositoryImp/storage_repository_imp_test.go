package repositoryImp

import (
	"context"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agroclimate/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entities.StorageSensor{}, &entities.StorageReading{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestLatestReadingOrdering(t *testing.T) {
	repo := New(setupTestDB(t))
	now := time.Now()

	if err := repo.CreateSensor(&entities.StorageSensor{SensorID: "s1", FarmerID: "f1", Label: "maize crib"}); err != nil {
		t.Fatalf("create sensor: %v", err)
	}
	older := entities.StorageReading{SensorID: "s1", Temperature: 31, Humidity: 70, Timestamp: now.Add(-48 * time.Hour)}
	newer := entities.StorageReading{SensorID: "s1", Temperature: 22, Humidity: 55, Timestamp: now.Add(-1 * time.Hour)}
	if err := repo.AddReading(&older); err != nil {
		t.Fatalf("add reading: %v", err)
	}
	if err := repo.AddReading(&newer); err != nil {
		t.Fatalf("add reading: %v", err)
	}

	got, err := repo.LatestReading(context.Background(), "s1")
	if err != nil {
		t.Fatalf("latest reading: %v", err)
	}
	if got.Temperature != 22 {
		t.Errorf("expected the newest reading, got temp %v", got.Temperature)
	}
}

func TestLatestReadingNotFound(t *testing.T) {
	repo := New(setupTestDB(t))
	if _, err := repo.LatestReading(context.Background(), "ghost"); err == nil {
		t.Error("expected not-found for unknown sensor")
	}
}

package repositoryImp

import (
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
	if err := db.AutoMigrate(&entities.PlantingRecord{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateAndLatest(t *testing.T) {
	repo := New(setupTestDB(t))
	now := time.Now()

	first := entities.PlantingRecord{FarmerID: "f1", FieldID: 3, Crop: "maize", PlantingDate: now.AddDate(0, -4, 0), AreaHa: 1}
	second := entities.PlantingRecord{FarmerID: "f1", FieldID: 3, Crop: "beans", PlantingDate: now.AddDate(0, 0, -10), AreaHa: 0.5}
	if err := repo.Create(&first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(&second); err != nil {
		t.Fatalf("create: %v", err)
	}

	latest, err := repo.LatestByField("f1", 3)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Crop != "beans" {
		t.Errorf("expected most recent planting (beans), got %s", latest.Crop)
	}

	all, err := repo.ListByField("f1", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].Crop != "maize" {
		t.Errorf("list should be oldest first, got %s", all[0].Crop)
	}

	if _, err := repo.LatestByField("f1", 99); err == nil {
		t.Error("expected not-found for empty field")
	}
}

func TestActiveByField(t *testing.T) {
	repo := New(setupTestDB(t))
	now := time.Now()

	harvested := entities.PlantingRecord{FarmerID: "f1", FieldID: 3, Crop: "maize", PlantingDate: now.AddDate(0, 0, -120), AreaHa: 1}
	growing := entities.PlantingRecord{FarmerID: "f1", FieldID: 3, Crop: "maize", PlantingDate: now.AddDate(0, 0, -30), AreaHa: 1}
	if err := repo.Create(&harvested); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(&growing); err != nil {
		t.Fatalf("create: %v", err)
	}

	maturity := func(crop, variety string) int { return 90 }
	active, err := repo.ActiveByField("f1", 3, now, maturity)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active planting, got %d", len(active))
	}
	if !active[0].PlantingDate.After(now.AddDate(0, 0, -31)) {
		t.Error("wrong record considered active")
	}
}

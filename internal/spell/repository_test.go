package spell

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql db: %v", err)
	}
	// Keep the in-memory database on a single connection
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestPrimeModuleSeedsCatalog(t *testing.T) {
	db := newTestDB(t)
	if err := PrimeModule(db); err != nil {
		t.Fatalf("PrimeModule failed: %v", err)
	}

	if got := GetSpellCount(); got != len(catalogSeed) {
		t.Fatalf("expected %d spells in repository, got %d", len(catalogSeed), got)
	}

	// Seeding twice must not create duplicate rows
	if err := PrimeModule(db); err != nil {
		t.Fatalf("second PrimeModule failed: %v", err)
	}
	var count int64
	if err := db.Model(&Spell{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != int64(len(catalogSeed)) {
		t.Fatalf("expected %d rows after reseed, got %d", len(catalogSeed), count)
	}
}

func TestGetInfoByID(t *testing.T) {
	db := newTestDB(t)
	if err := PrimeModule(db); err != nil {
		t.Fatalf("PrimeModule failed: %v", err)
	}

	info, err := GetInfoByID("o7")
	if err != nil {
		t.Fatalf("GetInfoByID failed: %v", err)
	}
	if info.Name != "Avada Kedavra" || info.Type != TypeOffensive {
		t.Fatalf("unexpected info for o7: %+v", info)
	}

	if _, err := GetInfoByID("nonexistent"); !errors.Is(err, ErrSpellNotFound) {
		t.Fatalf("expected ErrSpellNotFound, got %v", err)
	}
}

func TestDrawRandomSpell(t *testing.T) {
	db := newTestDB(t)
	if err := PrimeModule(db); err != nil {
		t.Fatalf("PrimeModule failed: %v", err)
	}

	// Every draw must come from the catalog
	for i := 0; i < 100; i++ {
		id, info, err := DrawRandomSpell()
		if err != nil {
			t.Fatalf("DrawRandomSpell failed: %v", err)
		}
		fromCatalog, err := GetInfoByID(id)
		if err != nil {
			t.Fatalf("drawn spell %s not in catalog", id)
		}
		if info != fromCatalog {
			t.Fatalf("drawn info mismatch for %s", id)
		}
	}
}

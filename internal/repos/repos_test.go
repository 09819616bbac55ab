package repos_test

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/db"
	"github.com/interiorswala/studio-backend/internal/logger"
)

func mustTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func openTestDB(t *testing.T, log *logger.Logger) *gorm.DB {
	t.Helper()
	svc, err := db.Open(filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	return svc.DB()
}

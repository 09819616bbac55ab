package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
	"github.com/interiorswala/studio-backend/internal/utils"
)

type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewSQLiteService opens the database file named by DB_PATH.
func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
	path := utils.GetEnv("DB_PATH", "interiorswala.db", log)
	return Open(path, log)
}

// Open opens (creating if necessary) the single-file database at path. Tests
// pass an isolated temp path instead of going through the environment.
func Open(path string, log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	serviceLog.Info("Opening SQLite database...", "path", path)
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		serviceLog.Error("Failed to open SQLite database", "path", path, "error", err)
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}

	return &SQLiteService{db: gormDB, log: serviceLog}, nil
}

// AutoMigrateAll ensures the three tables exist. AutoMigrate is additive: a
// column introduced in a later revision (aiConcept) is added to a database
// created before it, and re-running against an up-to-date schema is a no-op.
func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	err := s.db.AutoMigrate(
		&types.Profile{},
		&types.PortfolioItem{},
		&types.QuotationRequest{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for sqlite tables", "error", err)
		return err
	}
	return nil
}

func (s *SQLiteService) DB() *gorm.DB {
	return s.db
}

package database

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/longevity-jobs/internal/models"
)

// Store reads jobs straight from the Supabase Postgres database. It never
// migrates or writes: the schema belongs to the data service.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Connect opens a GORM connection for dsn.
func Connect(dsn string, log *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}
	log.Infow("Database connection established")
	return db, nil
}

// ActiveJobs returns every job with active = true, newest created first.
func (s *Store) ActiveJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at desc").
		Find(&jobs).Error
	if err != nil {
		return nil, errors.Wrap(err, "querying active jobs")
	}
	return jobs, nil
}

package testutil

import (
	"errors"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/ideahub/ideahub/internal/models"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error
)

// DB opens the shared integration-test database, migrating the full model
// set on first use. Tests are skipped when TEST_POSTGRES_DSN is unset.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			dbErr = err
			return
		}

		if err := autoMigrateAll(db); err != nil {
			dbErr = err
			return
		}
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

// Tx begins a transaction that rolls back when the test finishes, keeping
// tests isolated from each other
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func autoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserActivity{},

		&models.Category{},
		&models.Tag{},
		&models.ProjectIdea{},
		&models.ProjectTag{},

		&models.ProjectLike{},
		&models.ProjectView{},
		&models.ProjectStats{},
		&models.Comment{},
		&models.CommentLike{},

		&models.Message{},
		&models.MessageThread{},

		&models.ProjectAnalytics{},
		&models.UserEngagementMetrics{},
		&models.PlatformStatistics{},
		&models.SearchQuery{},
		&models.TrendingProject{},
	)
}

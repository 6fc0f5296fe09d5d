package db

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/ideahub/ideahub/internal/models"
)

// AnalyticsRepository provides database operations for the analytics data
// sinks. Rows are written by the external aggregation job; this layer only
// stores and serves whatever was written.
type AnalyticsRepository struct {
	*Repository
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(repo *Repository) *AnalyticsRepository {
	return &AnalyticsRepository{Repository: repo}
}

// CreateProjectAnalytics inserts a daily analytics row. A duplicate
// (project, date) pair fails with ConstraintViolation.
func (r *AnalyticsRepository) CreateProjectAnalytics(ctx context.Context, row *models.ProjectAnalytics) error {
	return Translate(r.db.WithContext(ctx).Create(row).Error)
}

// UpsertProjectAnalytics inserts or overwrites the daily analytics row
// keyed on (project, date)
func (r *AnalyticsRepository) UpsertProjectAnalytics(ctx context.Context, row *models.ProjectAnalytics) error {
	return Translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "date"}},
			UpdateAll: true,
		}).
		Create(row).Error)
}

// GetProjectAnalytics retrieves the analytics row for (project, date)
func (r *AnalyticsRepository) GetProjectAnalytics(ctx context.Context, projectID int64, date time.Time) (*models.ProjectAnalytics, error) {
	var row models.ProjectAnalytics
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND date = ?", projectID, date.Format("2006-01-02")).
		First(&row).Error; err != nil {
		return nil, Translate(err)
	}
	return &row, nil
}

// ListProjectAnalytics retrieves daily rows for a project, newest first
func (r *AnalyticsRepository) ListProjectAnalytics(ctx context.Context, projectID int64, limit int) ([]*models.ProjectAnalytics, error) {
	var rows []*models.ProjectAnalytics
	q := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

// UpsertEngagementMetrics inserts or overwrites the daily engagement row
// keyed on (user, date)
func (r *AnalyticsRepository) UpsertEngagementMetrics(ctx context.Context, row *models.UserEngagementMetrics) error {
	return Translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			UpdateAll: true,
		}).
		Create(row).Error)
}

// GetEngagementMetrics retrieves the engagement row for (user, date)
func (r *AnalyticsRepository) GetEngagementMetrics(ctx context.Context, userID int64, date time.Time) (*models.UserEngagementMetrics, error) {
	var row models.UserEngagementMetrics
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		First(&row).Error; err != nil {
		return nil, Translate(err)
	}
	return &row, nil
}

// UpsertPlatformStatistics inserts or overwrites the platform-wide row
// keyed on date
func (r *AnalyticsRepository) UpsertPlatformStatistics(ctx context.Context, row *models.PlatformStatistics) error {
	return Translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			UpdateAll: true,
		}).
		Create(row).Error)
}

// LatestPlatformStatistics retrieves the most recent platform-wide row
func (r *AnalyticsRepository) LatestPlatformStatistics(ctx context.Context) (*models.PlatformStatistics, error) {
	var row models.PlatformStatistics
	if err := r.db.WithContext(ctx).Order("date DESC").First(&row).Error; err != nil {
		return nil, Translate(err)
	}
	return &row, nil
}

// CreateSearchQuery appends a search query log entry
func (r *AnalyticsRepository) CreateSearchQuery(ctx context.Context, row *models.SearchQuery) error {
	return Translate(r.db.WithContext(ctx).Create(row).Error)
}

// ListSearchQueries retrieves recent search queries
func (r *AnalyticsRepository) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	var rows []*models.SearchQuery
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

// UpsertTrendingProject inserts or overwrites the trending record keyed on
// (project, timeframe, period_start)
func (r *AnalyticsRepository) UpsertTrendingProject(ctx context.Context, row *models.TrendingProject) error {
	return Translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "timeframe"}, {Name: "period_start"}},
			UpdateAll: true,
		}).
		Create(row).Error)
}

// ListTrending retrieves the trending records for a timeframe ordered by rank
func (r *AnalyticsRepository) ListTrending(ctx context.Context, timeframe string, limit int) ([]*models.TrendingProject, error) {
	var rows []*models.TrendingProject
	q := r.db.WithContext(ctx).
		Where("timeframe = ?", timeframe).
		Order("rank ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

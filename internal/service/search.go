package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
)

// SearchService records search query log entries. Search execution itself
// is out of scope; only the log record shape is owned here.
type SearchService struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewSearchService creates a new search service
func NewSearchService(repo *db.Repository, logger *zap.Logger) *SearchService {
	return &SearchService{repo: repo, logger: logger}
}

// Record appends a search query log entry
func (s *SearchService) Record(ctx context.Context, query *models.SearchQuery) error {
	if err := validateRequired("query", query.Query); err != nil {
		return err
	}
	if err := validateMaxLen("query", query.Query, 500); err != nil {
		return err
	}
	return db.NewAnalyticsRepository(s.repo).CreateSearchQuery(ctx, query)
}

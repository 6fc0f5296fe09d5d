package admin

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/ideahub/ideahub/internal/cache"
	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
	"github.com/ideahub/ideahub/pkg/config"
	"github.com/ideahub/ideahub/pkg/logging"
)

// AnalyticsAPI provides read-only admin methods over the analytics rollups.
// All rows are produced by the aggregation pipeline; nothing is written here.
type AnalyticsAPI struct {
	repo  *db.Repository
	cache *cache.Cache
	cfg   *config.AdminConfig
}

// NewAnalyticsAPI creates a new analytics admin API
func NewAnalyticsAPI(repo *db.Repository, c *cache.Cache, cfg *config.AdminConfig) *AnalyticsAPI {
	return &AnalyticsAPI{repo: repo, cache: c, cfg: cfg}
}

var projectAnalyticsSurface = surface{
	filterFields: []string{"project_id", "date"},
	searchFields: []string{},
	orderFields:  []string{"date", "views", "unique_views", "likes", "comments", "shares"},
	defaultOrder: "date",
	defaultDesc:  true,
}

// ListProjectAnalytics handles admin.list_project_analytics
func (a *AnalyticsAPI) ListProjectAnalytics(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, projectAnalyticsSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.ProjectAnalytics{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var rows []*models.ProjectAnalytics
	if err := params.Apply(q).Find(&rows).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

var engagementSurface = surface{
	filterFields: []string{"user_id", "date"},
	searchFields: []string{},
	orderFields:  []string{"date", "login_count", "projects_viewed", "projects_liked", "comments_posted", "session_duration"},
	defaultOrder: "date",
	defaultDesc:  true,
}

// ListEngagementMetrics handles admin.list_engagement_metrics
func (a *AnalyticsAPI) ListEngagementMetrics(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, engagementSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.UserEngagementMetrics{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var rows []*models.UserEngagementMetrics
	if err := params.Apply(q).Find(&rows).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

var platformStatsSurface = surface{
	filterFields: []string{"date"},
	searchFields: []string{},
	orderFields:  []string{"date", "total_users", "total_projects", "active_users"},
	defaultOrder: "date",
	defaultDesc:  true,
}

// ListPlatformStatistics handles admin.list_platform_statistics
func (a *AnalyticsAPI) ListPlatformStatistics(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, platformStatsSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.PlatformStatistics{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var rows []*models.PlatformStatistics
	if err := params.Apply(q).Find(&rows).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

// LatestPlatformStatistics handles admin.latest_platform_statistics. The
// row changes once per rollup run, so it is served from cache when possible.
func (a *AnalyticsAPI) LatestPlatformStatistics(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	cacheKey := cache.HashKey("admin_latest_platform_statistics")

	if a.cache != nil {
		var cached models.PlatformStatistics
		if err := a.cache.GetJSON(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	row, err := db.NewAnalyticsRepository(a.repo).LatestPlatformStatistics(ctx.Request.Context())
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.SetJSON(cacheKey, row, a.cfg.CacheTTL); err != nil {
			logging.GetLogger().Warn(fmt.Sprintf("Failed to cache platform statistics: %v", err))
		}
	}

	return row, nil
}

var searchQuerySurface = surface{
	filterFields: []string{"user_id", "category_filter"},
	searchFields: []string{"query"},
	orderFields:  []string{"created_at", "results_count"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// ListSearchQueries handles admin.list_search_queries
func (a *AnalyticsAPI) ListSearchQueries(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, searchQuerySurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.SearchQuery{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var rows []*models.SearchQuery
	if err := params.Apply(q).Find(&rows).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

// ListTrending handles admin.list_trending. Rankings only move when the
// rollup recomputes them, so pages are cached per timeframe.
func (a *AnalyticsAPI) ListTrending(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		Timeframe string `json:"timeframe"`
		Limit     int    `json:"limit"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if req.Timeframe == "" {
		req.Timeframe = models.TimeframeWeek
	}
	if !contains(models.Timeframes, req.Timeframe) {
		return nil, &db.ValidationError{Field: "timeframe", Reason: "is not a valid timeframe"}
	}
	if req.Limit <= 0 || req.Limit > a.cfg.MaxPageSize {
		req.Limit = a.cfg.DefaultPageSize
	}

	cacheKey := cache.HashKey("admin_list_trending", req.Timeframe, fmt.Sprintf("%d", req.Limit))

	if a.cache != nil {
		var cached []*models.TrendingProject
		if err := a.cache.GetJSON(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := db.NewAnalyticsRepository(a.repo).ListTrending(ctx.Request.Context(), req.Timeframe, req.Limit)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.SetJSON(cacheKey, rows, a.cfg.CacheTTL); err != nil {
			logging.GetLogger().Warn(fmt.Sprintf("Failed to cache trending projects: %v", err))
		}
	}

	return rows, nil
}

package models

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// ProjectAnalytics holds daily analytics data for a project, written only
// by the external aggregation job
type ProjectAnalytics struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID int64     `gorm:"not null;uniqueIndex:project_analytics_ux1;column:project_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:project_analytics_ux1;column:date"`

	// Daily metrics
	Views       int64 `gorm:"not null;default:0;column:views"`
	UniqueViews int64 `gorm:"not null;default:0;column:unique_views"`
	Likes       int64 `gorm:"not null;default:0;column:likes"`
	Comments    int64 `gorm:"not null;default:0;column:comments"`
	Shares      int64 `gorm:"not null;default:0;column:shares"`
	Messages    int64 `gorm:"not null;default:0;column:messages"`

	// Traffic sources
	DirectTraffic   int64 `gorm:"not null;default:0;column:direct_traffic"`
	SearchTraffic   int64 `gorm:"not null;default:0;column:search_traffic"`
	SocialTraffic   int64 `gorm:"not null;default:0;column:social_traffic"`
	ReferralTraffic int64 `gorm:"not null;default:0;column:referral_traffic"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProjectAnalytics
func (ProjectAnalytics) TableName() string {
	return "project_analytics"
}

// UserEngagementMetrics holds daily engagement counters for a user
type UserEngagementMetrics struct {
	ID     int64     `gorm:"primaryKey;autoIncrement;column:id"`
	UserID int64     `gorm:"not null;uniqueIndex:user_engagement_metrics_ux1;column:user_id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:user_engagement_metrics_ux1;column:date"`

	// Activity metrics
	LoginCount     int64 `gorm:"not null;default:0;column:login_count"`
	ProjectsViewed int64 `gorm:"not null;default:0;column:projects_viewed"`
	ProjectsLiked  int64 `gorm:"not null;default:0;column:projects_liked"`
	CommentsPosted int64 `gorm:"not null;default:0;column:comments_posted"`
	MessagesSent   int64 `gorm:"not null;default:0;column:messages_sent"`
	SearchQueries  int64 `gorm:"not null;default:0;column:search_queries"`

	// Time metrics, in minutes
	SessionDuration int64 `gorm:"not null;default:0;column:session_duration"`
	PageViews       int64 `gorm:"not null;default:0;column:page_views"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for UserEngagementMetrics
func (UserEngagementMetrics) TableName() string {
	return "user_engagement_metrics"
}

// PlatformStatistics holds platform-wide daily statistics
type PlatformStatistics struct {
	ID   int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex:platform_statistics_ux1;column:date"`

	// Core metrics
	TotalUsers  int64 `gorm:"not null;default:0;column:total_users"`
	NewUsers    int64 `gorm:"not null;default:0;column:new_users"`
	ActiveUsers int64 `gorm:"not null;default:0;column:active_users"`

	TotalProjects     int64 `gorm:"not null;default:0;column:total_projects"`
	PublishedProjects int64 `gorm:"not null;default:0;column:published_projects"`
	NewProjects       int64 `gorm:"not null;default:0;column:new_projects"`

	TotalComments int64 `gorm:"not null;default:0;column:total_comments"`
	NewComments   int64 `gorm:"not null;default:0;column:new_comments"`

	TotalLikes int64 `gorm:"not null;default:0;column:total_likes"`
	TotalViews int64 `gorm:"not null;default:0;column:total_views"`

	// Category distribution
	CategoryStats datatypes.JSONMap `gorm:"type:jsonb;column:category_stats"`

	// Popular tags as an ordered JSON list
	TrendingTags datatypes.JSON `gorm:"type:jsonb;column:trending_tags"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for PlatformStatistics
func (PlatformStatistics) TableName() string {
	return "platform_statistics"
}

// SearchQuery represents an append-only search query log entry
type SearchQuery struct {
	ID           int64         `gorm:"primaryKey;autoIncrement;column:id"`
	UserID       sql.NullInt64 `gorm:"index:search_queries_ix2;column:user_id"`
	Query        string        `gorm:"type:varchar(500);not null;index:search_queries_ix1;column:query"`
	ResultsCount int64         `gorm:"not null;default:0;column:results_count"`

	// Search context
	CategoryFilter   string         `gorm:"type:varchar(100);not null;default:'';column:category_filter"`
	DifficultyFilter string         `gorm:"type:varchar(50);not null;default:'';column:difficulty_filter"`
	TagsFilter       datatypes.JSON `gorm:"type:jsonb;column:tags_filter"`

	// User interaction
	ClickedResults datatypes.JSON `gorm:"type:jsonb;column:clicked_results"`
	SessionID      string         `gorm:"type:varchar(100);not null;default:'';column:session_id"`
	IPAddress      sql.NullString `gorm:"type:varchar(45);column:ip_address"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:search_queries_ix1;index:search_queries_ix2;column:created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for SearchQuery
func (SearchQuery) TableName() string {
	return "search_queries"
}

// TrendingProject records a project's trending rank for a time period,
// computed by the external aggregation job
type TrendingProject struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID   int64     `gorm:"not null;uniqueIndex:trending_projects_ux1;column:project_id"`
	Timeframe   string    `gorm:"type:varchar(10);not null;uniqueIndex:trending_projects_ux1;column:timeframe"`
	PeriodStart time.Time `gorm:"not null;uniqueIndex:trending_projects_ux1;column:period_start"`
	PeriodEnd   time.Time `gorm:"not null;column:period_end"`

	// Trending metrics
	TrendScore     float64 `gorm:"not null;column:trend_score"`
	ViewsGrowth    float64 `gorm:"not null;default:0;column:views_growth"`
	LikesGrowth    float64 `gorm:"not null;default:0;column:likes_growth"`
	CommentsGrowth float64 `gorm:"not null;default:0;column:comments_growth"`

	Rank int64 `gorm:"not null;column:rank"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for TrendingProject
func (TrendingProject) TableName() string {
	return "trending_projects"
}

// Timeframe constants
const (
	TimeframeDay   = "day"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeYear  = "year"
)

// Timeframes lists the valid timeframe values
var Timeframes = []string{
	TimeframeDay,
	TimeframeWeek,
	TimeframeMonth,
	TimeframeYear,
}

package models

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// Category represents a project category
type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:categories_ux1;column:name"`
	Description string    `gorm:"type:text;not null;default:'';column:description"`
	Icon        string    `gorm:"type:varchar(50);not null;default:'';column:icon"`
	Color       string    `gorm:"type:varchar(7);not null;default:'#007bff';column:color"`
	IsActive    bool      `gorm:"not null;default:true;column:is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Tag represents a project tag
type Tag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:tags_ux1;column:name"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#6c757d';column:color"`
	// Derived counter maintained by the external aggregation job
	UsageCount int64     `gorm:"not null;default:0;column:usage_count"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime;column:created_at"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// ProjectIdea represents a project idea submission
type ProjectIdea struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Title         string `gorm:"type:varchar(255);not null;column:title"`
	Description   string `gorm:"type:text;not null;column:description"`
	CategoryID    int64  `gorm:"not null;index:project_ideas_ix2;column:category_id"`
	Difficulty    string `gorm:"type:varchar(20);not null;column:difficulty"`
	EstimatedTime string `gorm:"type:varchar(20);not null;column:estimated_time"`

	// Technical details as ordered JSON lists
	RequiredSkills datatypes.JSON `gorm:"type:jsonb;column:required_skills"`
	TechStack      datatypes.JSON `gorm:"type:jsonb;column:tech_stack"`
	Resources      datatypes.JSON `gorm:"type:jsonb;column:resources"`

	// Project metadata
	Status               string `gorm:"type:varchar(20);not null;default:'draft';index:project_ideas_ix1;column:status"`
	IsFeatured           bool   `gorm:"not null;default:false;column:is_featured"`
	IsOpenForInspiration bool   `gorm:"not null;default:true;column:is_open_for_inspiration"`

	AuthorID int64 `gorm:"not null;index;column:author_id"`

	// Moderation fields
	ModeratorNotes string        `gorm:"type:text;not null;default:'';column:moderator_notes"`
	ReviewedByID   sql.NullInt64 `gorm:"column:reviewed_by_id"`
	ReviewedAt     sql.NullTime  `gorm:"column:reviewed_at"`

	// Timestamps
	CreatedAt   time.Time    `gorm:"not null;autoCreateTime;column:created_at"`
	UpdatedAt   time.Time    `gorm:"not null;autoUpdateTime;column:updated_at"`
	PublishedAt sql.NullTime `gorm:"column:published_at"`

	// Relationships
	Category   *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
	Author     *User     `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	ReviewedBy *User     `gorm:"foreignKey:ReviewedByID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for ProjectIdea
func (ProjectIdea) TableName() string {
	return "project_ideas"
}

// Project status constants
const (
	StatusDraft       = "draft"
	StatusUnderReview = "under_review"
	StatusPublished   = "published"
	StatusRejected    = "rejected"
	StatusArchived    = "archived"
)

// ProjectStatuses lists the valid project status values
var ProjectStatuses = []string{
	StatusDraft,
	StatusUnderReview,
	StatusPublished,
	StatusRejected,
	StatusArchived,
}

// Difficulty constants
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyExpert       = "expert"
)

// Difficulties lists the valid difficulty values
var Difficulties = []string{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

// Time estimate constants
const (
	TimeEstimateDays      = "1-7_days"
	TimeEstimateWeeks     = "1-2_weeks"
	TimeEstimateMonth     = "1_month"
	TimeEstimateQuarter   = "2-3_months"
	TimeEstimateHalfYear  = "6_months"
	TimeEstimateOngoing   = "ongoing"
)

// TimeEstimates lists the valid estimated_time values
var TimeEstimates = []string{
	TimeEstimateDays,
	TimeEstimateWeeks,
	TimeEstimateMonth,
	TimeEstimateQuarter,
	TimeEstimateHalfYear,
	TimeEstimateOngoing,
}

// ProjectTag represents a project-to-tag mapping
type ProjectTag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID int64     `gorm:"not null;uniqueIndex:project_tags_ux1;column:project_id"`
	TagID     int64     `gorm:"not null;uniqueIndex:project_tags_ux1;column:tag_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Tag     *Tag         `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProjectTag
func (ProjectTag) TableName() string {
	return "project_tags"
}

// ProjectLike represents a user liking a project
type ProjectLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID int64     `gorm:"not null;uniqueIndex:project_likes_ux1;column:project_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:project_likes_ux1;column:user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProjectLike
func (ProjectLike) TableName() string {
	return "project_likes"
}

// ProjectView represents an append-only project view log entry
type ProjectView struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID int64          `gorm:"not null;index:project_views_ix1;column:project_id"`
	UserID    sql.NullInt64  `gorm:"column:user_id"`
	SessionID string         `gorm:"type:varchar(100);not null;default:'';column:session_id"`
	IPAddress string         `gorm:"type:varchar(45);not null;column:ip_address"`
	UserAgent string         `gorm:"type:text;not null;default:'';column:user_agent"`
	Referrer  string         `gorm:"type:varchar(200);not null;default:'';column:referrer"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime;index:project_views_ix1;column:created_at"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for ProjectView
func (ProjectView) TableName() string {
	return "project_views"
}

// ProjectStats holds aggregated per-project counters maintained by the
// external aggregation job
type ProjectStats struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID    int64     `gorm:"not null;uniqueIndex:project_stats_ux1;column:project_id"`
	ViewCount    int64     `gorm:"not null;default:0;column:view_count"`
	LikeCount    int64     `gorm:"not null;default:0;column:like_count"`
	CommentCount int64     `gorm:"not null;default:0;column:comment_count"`
	ShareCount   int64     `gorm:"not null;default:0;column:share_count"`
	LastUpdated  time.Time `gorm:"not null;autoUpdateTime;column:last_updated"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for ProjectStats
func (ProjectStats) TableName() string {
	return "project_stats"
}

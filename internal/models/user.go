package models

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// User represents a platform user
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Email    string `gorm:"type:varchar(254);not null;uniqueIndex:users_ux1;column:email"`
	Username string `gorm:"type:varchar(150);not null;column:username"`

	// Profile fields
	FirstName      string `gorm:"type:varchar(150);not null;default:'';column:first_name"`
	LastName       string `gorm:"type:varchar(150);not null;default:'';column:last_name"`
	ProfilePicture string `gorm:"type:varchar(255);not null;default:'';column:profile_picture"`
	Bio            string `gorm:"type:varchar(500);not null;default:'';column:bio"`
	Website        string `gorm:"type:varchar(200);not null;default:'';column:website"`
	Linkedin       string `gorm:"type:varchar(200);not null;default:'';column:linkedin"`
	Github         string `gorm:"type:varchar(200);not null;default:'';column:github"`

	// Skills as an ordered JSON list
	Skills datatypes.JSON `gorm:"type:jsonb;column:skills"`

	ContactPreference string `gorm:"type:varchar(20);not null;default:'platform';column:contact_preference"`

	// User preferences and statistics as JSON maps
	Preferences datatypes.JSONMap `gorm:"type:jsonb;column:preferences"`
	Stats       datatypes.JSONMap `gorm:"type:jsonb;column:stats"`

	// Account status fields
	IsVerified  bool           `gorm:"not null;default:false;column:is_verified"`
	IsActive    bool           `gorm:"not null;default:true;column:is_active"`
	IsStaff     bool           `gorm:"not null;default:false;column:is_staff"`
	JoinDate    time.Time      `gorm:"not null;autoCreateTime;column:join_date"`
	LastLoginIP sql.NullString `gorm:"type:varchar(45);column:last_login_ip"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Contact preference constants
const (
	ContactPreferenceEmail    = "email"
	ContactPreferencePlatform = "platform"
	ContactPreferenceBoth     = "both"
	ContactPreferenceNone     = "none"
)

// ContactPreferences lists the valid contact preference values
var ContactPreferences = []string{
	ContactPreferenceEmail,
	ContactPreferencePlatform,
	ContactPreferenceBoth,
	ContactPreferenceNone,
}

// DefaultPreferences returns the preference map materialized for new users
func DefaultPreferences() datatypes.JSONMap {
	return datatypes.JSONMap{
		"emailNotifications":  true,
		"ideaRecommendations": true,
		"weeklyDigest":        true,
		"profileVisibility":   "public",
	}
}

// DefaultStats returns the statistics map materialized for new users
func DefaultStats() datatypes.JSONMap {
	return datatypes.JSONMap{
		"ideasSubmitted":   0,
		"profileViews":     0,
		"inspirationCount": 0,
		"totalShares":      0,
	}
}

// UserActivity represents an append-only user activity log entry
type UserActivity struct {
	ID           int64             `gorm:"primaryKey;autoIncrement;column:id"`
	UserID       int64             `gorm:"not null;index;column:user_id"`
	ActivityType string            `gorm:"type:varchar(50);not null;column:activity_type"`
	Description  string            `gorm:"type:text;not null;default:'';column:description"`
	IPAddress    sql.NullString    `gorm:"type:varchar(45);column:ip_address"`
	UserAgent    string            `gorm:"type:text;not null;default:'';column:user_agent"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb;column:metadata"`
	CreatedAt    time.Time         `gorm:"not null;autoCreateTime;column:created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for UserActivity
func (UserActivity) TableName() string {
	return "user_activities"
}

// Activity type constants
const (
	ActivityLogin          = "login"
	ActivityLogout         = "logout"
	ActivityProjectCreated = "project_created"
	ActivityProjectLiked   = "project_liked"
	ActivityCommentPosted  = "comment_posted"
	ActivityProfileUpdated = "profile_updated"
)

// ActivityTypes lists the valid activity type values
var ActivityTypes = []string{
	ActivityLogin,
	ActivityLogout,
	ActivityProjectCreated,
	ActivityProjectLiked,
	ActivityCommentPosted,
	ActivityProfileUpdated,
}

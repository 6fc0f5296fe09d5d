package models

import (
	"database/sql"
	"time"
)

// Comment represents a comment on a project idea
type Comment struct {
	ID        int64         `gorm:"primaryKey;autoIncrement;column:id"`
	ProjectID int64         `gorm:"not null;index:comments_ix1;column:project_id"`
	AuthorID  int64         `gorm:"not null;index:comments_ix2;column:author_id"`
	ParentID  sql.NullInt64 `gorm:"index:comments_ix3;column:parent_id"`

	Content          string `gorm:"type:text;not null;column:content"`
	IsEdited         bool   `gorm:"not null;default:false;column:is_edited"`
	IsDeleted        bool   `gorm:"not null;default:false;column:is_deleted"`
	ModeratorDeleted bool   `gorm:"not null;default:false;column:moderator_deleted"`

	// Moderation fields
	IsFlagged  bool   `gorm:"not null;default:false;column:is_flagged"`
	FlagReason string `gorm:"type:varchar(100);not null;default:'';column:flag_reason"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index:comments_ix1;index:comments_ix2;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at"`

	// Relationships
	Project *ProjectIdea `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Author  *User        `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Parent  *Comment     `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE"`
	Replies []Comment    `gorm:"foreignKey:ParentID;references:ID"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// IsReply reports whether this comment is a reply to another comment
func (c *Comment) IsReply() bool {
	return c.ParentID.Valid
}

// CommentLike represents a user liking a comment
type CommentLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	CommentID int64     `gorm:"not null;uniqueIndex:comment_likes_ux1;column:comment_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:comment_likes_ux1;column:user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at"`

	// Relationships
	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for CommentLike
func (CommentLike) TableName() string {
	return "comment_likes"
}

package db

import (
	"context"

	"github.com/ideahub/ideahub/internal/models"
)

// ProjectLikeRepository provides project-like database operations
type ProjectLikeRepository struct {
	*Repository
}

// NewProjectLikeRepository creates a new project like repository
func NewProjectLikeRepository(repo *Repository) *ProjectLikeRepository {
	return &ProjectLikeRepository{Repository: repo}
}

// Create records a like. A second like for the same (project, user) pair
// fails with ConstraintViolation; the store resolves concurrent attempts.
func (r *ProjectLikeRepository) Create(ctx context.Context, like *models.ProjectLike) error {
	return Translate(r.db.WithContext(ctx).Create(like).Error)
}

// Delete removes a like by (project, user)
func (r *ProjectLikeRepository) Delete(ctx context.Context, projectID, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectLike{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountForProject counts likes for a project
func (r *ProjectLikeRepository) CountForProject(ctx context.Context, projectID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProjectLike{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, Translate(err)
	}
	return count, nil
}

// ProjectViewRepository provides append-only view log operations
type ProjectViewRepository struct {
	*Repository
}

// NewProjectViewRepository creates a new project view repository
func NewProjectViewRepository(repo *Repository) *ProjectViewRepository {
	return &ProjectViewRepository{Repository: repo}
}

// Create appends a view log entry; there is no uniqueness constraint
func (r *ProjectViewRepository) Create(ctx context.Context, view *models.ProjectView) error {
	return Translate(r.db.WithContext(ctx).Create(view).Error)
}

// ListByProject retrieves recent views for a project
func (r *ProjectViewRepository) ListByProject(ctx context.Context, projectID int64, limit int) ([]*models.ProjectView, error) {
	var views []*models.ProjectView
	q := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&views).Error; err != nil {
		return nil, Translate(err)
	}
	return views, nil
}

// ProjectStatsRepository provides project stats operations. Counter values
// are written by the external aggregation job and preserved as written.
type ProjectStatsRepository struct {
	*Repository
}

// NewProjectStatsRepository creates a new project stats repository
func NewProjectStatsRepository(repo *Repository) *ProjectStatsRepository {
	return &ProjectStatsRepository{Repository: repo}
}

// GetByProject retrieves the stats row for a project
func (r *ProjectStatsRepository) GetByProject(ctx context.Context, projectID int64) (*models.ProjectStats, error) {
	var stats models.ProjectStats
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&stats).Error; err != nil {
		return nil, Translate(err)
	}
	return &stats, nil
}

// Create creates the stats row for a project
func (r *ProjectStatsRepository) Create(ctx context.Context, stats *models.ProjectStats) error {
	return Translate(r.db.WithContext(ctx).Create(stats).Error)
}

// Update overwrites the stats row with the values given
func (r *ProjectStatsRepository) Update(ctx context.Context, stats *models.ProjectStats) error {
	return Translate(r.db.WithContext(ctx).Save(stats).Error)
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &comment, nil
}

// Create creates a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return Translate(r.db.WithContext(ctx).Create(comment).Error)
}

// Update updates a comment
func (r *CommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return Translate(r.db.WithContext(ctx).Save(comment).Error)
}

// ListByProject retrieves top-level comments on a project, newest first
func (r *CommentRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND parent_id IS NULL", projectID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, Translate(err)
	}
	return comments, nil
}

// GetReplies retrieves replies to a comment, excluding soft-deleted and
// moderator-deleted rows
func (r *CommentRepository) GetReplies(ctx context.Context, parentID int64) ([]*models.Comment, error) {
	var replies []*models.Comment
	if err := r.db.WithContext(ctx).
		Where("parent_id = ? AND is_deleted = ? AND moderator_deleted = ?", parentID, false, false).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, Translate(err)
	}
	return replies, nil
}

// CommentLikeRepository provides comment-like database operations
type CommentLikeRepository struct {
	*Repository
}

// NewCommentLikeRepository creates a new comment like repository
func NewCommentLikeRepository(repo *Repository) *CommentLikeRepository {
	return &CommentLikeRepository{Repository: repo}
}

// Create records a comment like. A duplicate (comment, user) pair fails
// with ConstraintViolation.
func (r *CommentLikeRepository) Create(ctx context.Context, like *models.CommentLike) error {
	return Translate(r.db.WithContext(ctx).Create(like).Error)
}

// Delete removes a comment like by (comment, user)
func (r *CommentLikeRepository) Delete(ctx context.Context, commentID, userID int64) error {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
)

// CommentService handles the comment write path
type CommentService struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo *db.Repository, logger *zap.Logger) *CommentService {
	return &CommentService{repo: repo, logger: logger}
}

// Post validates and persists a new comment. A reply must target a parent
// comment on the same project.
func (s *CommentService) Post(ctx context.Context, comment *models.Comment) error {
	if err := validateRequired("content", comment.Content); err != nil {
		return err
	}

	commentRepo := db.NewCommentRepository(s.repo)

	if comment.ParentID.Valid {
		parent, err := commentRepo.GetByID(ctx, comment.ParentID.Int64)
		if err != nil {
			return err
		}
		if parent.ProjectID != comment.ProjectID {
			return &db.ValidationError{Field: "parent", Reason: "reply must target a comment on the same project"}
		}
	}

	if err := commentRepo.Create(ctx, comment); err != nil {
		return err
	}
	s.logger.Info("Comment posted",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("project_id", comment.ProjectID),
		zap.Bool("is_reply", comment.IsReply()))
	return nil
}

// Edit replaces a comment's content and marks it edited
func (s *CommentService) Edit(ctx context.Context, commentID int64, content string) (*models.Comment, error) {
	if err := validateRequired("content", content); err != nil {
		return nil, err
	}

	commentRepo := db.NewCommentRepository(s.repo)
	comment, err := commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	comment.IsEdited = true
	if err := commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// SoftDelete marks a comment deleted by its author. The row is kept so the
// reply tree stays intact; reply listings exclude it.
func (s *CommentService) SoftDelete(ctx context.Context, commentID int64, byModerator bool) error {
	commentRepo := db.NewCommentRepository(s.repo)
	comment, err := commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if byModerator {
		comment.ModeratorDeleted = true
	} else {
		comment.IsDeleted = true
	}
	return commentRepo.Update(ctx, comment)
}

// Flag marks a comment for moderation review
func (s *CommentService) Flag(ctx context.Context, commentID int64, reason string) error {
	if err := validateMaxLen("flag_reason", reason, 100); err != nil {
		return err
	}

	commentRepo := db.NewCommentRepository(s.repo)
	comment, err := commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	comment.IsFlagged = true
	comment.FlagReason = reason
	return commentRepo.Update(ctx, comment)
}

// Replies lists replies to a comment, excluding soft-deleted and
// moderator-deleted rows
func (s *CommentService) Replies(ctx context.Context, commentID int64) ([]*models.Comment, error) {
	return db.NewCommentRepository(s.repo).GetReplies(ctx, commentID)
}

// Like records a like for (comment, user). A duplicate attempt fails with
// ConstraintViolation.
func (s *CommentService) Like(ctx context.Context, commentID, userID int64) error {
	like := &models.CommentLike{CommentID: commentID, UserID: userID}
	return db.NewCommentLikeRepository(s.repo).Create(ctx, like)
}

// Unlike removes a like for (comment, user)
func (s *CommentService) Unlike(ctx context.Context, commentID, userID int64) error {
	return db.NewCommentLikeRepository(s.repo).Delete(ctx, commentID, userID)
}

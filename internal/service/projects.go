package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
)

// ProjectService handles the project write path, including the status
// transition guard
type ProjectService struct {
	repo   *db.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewProjectService creates a new project service
func NewProjectService(repo *db.Repository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func validateProject(project *models.ProjectIdea) error {
	if err := validateRequired("title", project.Title); err != nil {
		return err
	}
	if err := validateMaxLen("title", project.Title, 255); err != nil {
		return err
	}
	if err := validateChoice("difficulty", project.Difficulty, models.Difficulties); err != nil {
		return err
	}
	if err := validateChoice("estimated_time", project.EstimatedTime, models.TimeEstimates); err != nil {
		return err
	}
	return validateChoice("status", project.Status, models.ProjectStatuses)
}

// Create validates and persists a new project idea in draft status
func (s *ProjectService) Create(ctx context.Context, project *models.ProjectIdea) error {
	if project.Status == "" {
		project.Status = models.StatusDraft
	}
	if err := validateProject(project); err != nil {
		return err
	}

	if err := db.NewProjectRepository(s.repo).Create(ctx, project); err != nil {
		return err
	}
	s.logger.Info("Project created",
		zap.Int64("project_id", project.ID),
		zap.Int64("author_id", project.AuthorID))
	return nil
}

// Update validates and persists changes to a project. The review fields
// (published_at, reviewed_by, reviewed_at) always come from the stored row,
// never from the caller, and a status change entering published or rejected
// is refused here: that is a review and must go through Transition, which
// records who reviewed and when.
func (s *ProjectService) Update(ctx context.Context, project *models.ProjectIdea) error {
	if err := validateProject(project); err != nil {
		return err
	}

	return s.repo.Transaction(func(tx *gorm.DB) error {
		repo := db.NewProjectRepository(db.NewRepository(tx))

		stored, err := repo.GetByID(ctx, project.ID)
		if err != nil {
			return err
		}

		project.PublishedAt = stored.PublishedAt
		project.ReviewedByID = stored.ReviewedByID
		project.ReviewedAt = stored.ReviewedAt
		project.CreatedAt = stored.CreatedAt

		if project.Status != stored.Status &&
			(project.Status == models.StatusPublished || project.Status == models.StatusRejected) {
			return &db.ValidationError{Field: "status", Reason: "publish and reject go through the review action"}
		}

		return repo.Update(ctx, project)
	})
}

// Delete removes a project; comments, likes, views, tag links, stats,
// messages, analytics and trending records cascade
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := db.NewProjectRepository(s.repo).Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Project deleted", zap.Int64("project_id", id))
	return nil
}

// Transition moves a project to a new status. A transition into published
// or rejected also sets reviewed_by and reviewed_at in the same
// transaction; the first transition into published sets published_at once
// and never again.
func (s *ProjectService) Transition(ctx context.Context, projectID int64, newStatus string, actorID int64) (*models.ProjectIdea, error) {
	if err := validateChoice("status", newStatus, models.ProjectStatuses); err != nil {
		return nil, err
	}

	var project *models.ProjectIdea
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := db.NewProjectRepository(db.NewRepository(tx))

		var err error
		project, err = repo.GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if project.Status == newStatus {
			return nil
		}

		now := s.now()
		if newStatus == models.StatusPublished || newStatus == models.StatusRejected {
			project.ReviewedByID = sql.NullInt64{Int64: actorID, Valid: true}
			project.ReviewedAt = sql.NullTime{Time: now, Valid: true}
			if newStatus == models.StatusPublished && !project.PublishedAt.Valid {
				project.PublishedAt = sql.NullTime{Time: now, Valid: true}
			}
		}
		project.Status = newStatus

		return repo.Update(ctx, project)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Project status changed",
		zap.Int64("project_id", projectID),
		zap.String("status", newStatus),
		zap.Int64("actor_id", actorID))
	return project, nil
}

// Like records a like for (project, user). A second attempt, concurrent or
// not, fails with ConstraintViolation; callers treat that as a no-op signal.
func (s *ProjectService) Like(ctx context.Context, projectID, userID int64) error {
	like := &models.ProjectLike{ProjectID: projectID, UserID: userID}
	return db.NewProjectLikeRepository(s.repo).Create(ctx, like)
}

// Unlike removes a like for (project, user)
func (s *ProjectService) Unlike(ctx context.Context, projectID, userID int64) error {
	return db.NewProjectLikeRepository(s.repo).Delete(ctx, projectID, userID)
}

// RecordView appends a view log entry; no deduplication applies
func (s *ProjectService) RecordView(ctx context.Context, view *models.ProjectView) error {
	if err := validateRequired("ip_address", view.IPAddress); err != nil {
		return err
	}
	return db.NewProjectViewRepository(s.repo).Create(ctx, view)
}

// AttachTag links a tag to a project, creating the tag by name when absent
func (s *ProjectService) AttachTag(ctx context.Context, projectID int64, tagName string) error {
	if err := validateRequired("tag", tagName); err != nil {
		return err
	}
	if err := validateMaxLen("tag", tagName, 50); err != nil {
		return err
	}

	return s.repo.Transaction(func(tx *gorm.DB) error {
		repo := db.NewRepository(tx)
		tagRepo := db.NewTagRepository(repo)

		tag, err := tagRepo.GetByName(ctx, tagName)
		if db.IsNotFound(err) {
			tag = &models.Tag{Name: tagName}
			if err := tagRepo.Create(ctx, tag); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		return db.NewProjectRepository(repo).AddTag(ctx, projectID, tag.ID)
	})
}

// DetachTag unlinks a tag from a project
func (s *ProjectService) DetachTag(ctx context.Context, projectID, tagID int64) error {
	return db.NewProjectRepository(s.repo).RemoveTag(ctx, projectID, tagID)
}

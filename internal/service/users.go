package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
)

// UserService handles the user write path
type UserService struct {
	repo   *db.Repository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo *db.Repository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// materializeDefaults populates empty preference and stats maps before the
// row is written. An empty map is indistinguishable from an unset one, so an
// explicit reset to empty also re-materializes defaults; the ambiguity is
// documented in DESIGN.md.
func materializeDefaults(user *models.User) {
	if len(user.Preferences) == 0 {
		user.Preferences = models.DefaultPreferences()
	}
	if len(user.Stats) == 0 {
		user.Stats = models.DefaultStats()
	}
}

func validateUser(user *models.User) error {
	if err := validateRequired("email", user.Email); err != nil {
		return err
	}
	if err := validateMaxLen("bio", user.Bio, 500); err != nil {
		return err
	}
	return validateChoice("contact_preference", user.ContactPreference, models.ContactPreferences)
}

// Create validates and persists a new user. Duplicate emails fail with
// ConstraintViolation.
func (s *UserService) Create(ctx context.Context, user *models.User) error {
	if user.ContactPreference == "" {
		user.ContactPreference = models.ContactPreferencePlatform
	}
	if err := validateUser(user); err != nil {
		return err
	}
	materializeDefaults(user)

	if err := db.NewUserRepository(s.repo).Create(ctx, user); err != nil {
		return err
	}
	s.logger.Info("User created", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	return nil
}

// Update validates and persists changes to an existing user, preserving
// customized preferences and stats
func (s *UserService) Update(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	materializeDefaults(user)
	return db.NewUserRepository(s.repo).Update(ctx, user)
}

// Delete removes a user. Authored projects, comments, likes and activities
// cascade; views, reviews, sent messages and search queries are nullified.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := db.NewUserRepository(s.repo).Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// RecordActivity appends an activity log entry for a user
func (s *UserService) RecordActivity(ctx context.Context, activity *models.UserActivity) error {
	if err := validateChoice("activity_type", activity.ActivityType, models.ActivityTypes); err != nil {
		return err
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}
	return db.NewUserActivityRepository(s.repo).Create(ctx, activity)
}

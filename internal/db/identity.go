package db

import (
	"context"

	"github.com/ideahub/ideahub/internal/models"
)

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, Translate(err)
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return Translate(r.db.WithContext(ctx).Create(user).Error)
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return Translate(r.db.WithContext(ctx).Save(user).Error)
}

// Delete deletes a user. Dependent rows follow the per-relationship
// cascade or nullify policy enforced by the store.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByIDs retrieves multiple users by IDs
func (r *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, Translate(err)
	}
	return users, nil
}

// UserActivityRepository provides activity-log database operations
type UserActivityRepository struct {
	*Repository
}

// NewUserActivityRepository creates a new user activity repository
func NewUserActivityRepository(repo *Repository) *UserActivityRepository {
	return &UserActivityRepository{Repository: repo}
}

// Create appends an activity log entry
func (r *UserActivityRepository) Create(ctx context.Context, activity *models.UserActivity) error {
	return Translate(r.db.WithContext(ctx).Create(activity).Error)
}

// ListByUser retrieves recent activity entries for a user
func (r *UserActivityRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.UserActivity, error) {
	var activities []*models.UserActivity
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, Translate(err)
	}
	return activities, nil
}

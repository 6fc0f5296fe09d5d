package db

import (
	"context"
	"time"

	"github.com/ideahub/ideahub/internal/models"
)

// MessageRepository provides message-related database operations
type MessageRepository struct {
	*Repository
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(repo *Repository) *MessageRepository {
	return &MessageRepository{Repository: repo}
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &message, nil
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	return Translate(r.db.WithContext(ctx).Create(message).Error)
}

// Update updates a message
func (r *MessageRepository) Update(ctx context.Context, message *models.Message) error {
	return Translate(r.db.WithContext(ctx).Save(message).Error)
}

// ListByRecipient retrieves messages for a recipient, newest first
func (r *MessageRepository) ListByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]*models.Message, error) {
	q := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var messages []*models.Message
	if err := q.Find(&messages).Error; err != nil {
		return nil, Translate(err)
	}
	return messages, nil
}

// ListByProject retrieves messages about a project, newest first
func (r *MessageRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.Message, error) {
	var messages []*models.Message
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return nil, Translate(err)
	}
	return messages, nil
}

// MarkSpam flags the given messages as spam
func (r *MessageRepository) MarkSpam(ctx context.Context, ids []int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id IN ?", ids).
		Update("is_spam", true)
	if res.Error != nil {
		return 0, Translate(res.Error)
	}
	return res.RowsAffected, nil
}

// MarkRead marks the given messages as read. read_at is only written for
// rows transitioning from unread.
func (r *MessageRepository) MarkRead(ctx context.Context, ids []int64, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id IN ? AND is_read = ?", ids, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return 0, Translate(res.Error)
	}
	return res.RowsAffected, nil
}

// MessageThreadRepository provides message thread database operations
type MessageThreadRepository struct {
	*Repository
}

// NewMessageThreadRepository creates a new message thread repository
func NewMessageThreadRepository(repo *Repository) *MessageThreadRepository {
	return &MessageThreadRepository{Repository: repo}
}

// GetByID retrieves a thread with its participants
func (r *MessageThreadRepository) GetByID(ctx context.Context, id int64) (*models.MessageThread, error) {
	var thread models.MessageThread
	if err := r.db.WithContext(ctx).Preload("Participants").First(&thread, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &thread, nil
}

// Create creates a new thread with its participants
func (r *MessageThreadRepository) Create(ctx context.Context, thread *models.MessageThread) error {
	return Translate(r.db.WithContext(ctx).Create(thread).Error)
}

// Update updates a thread
func (r *MessageThreadRepository) Update(ctx context.Context, thread *models.MessageThread) error {
	return Translate(r.db.WithContext(ctx).Save(thread).Error)
}

// AddParticipant adds a user to a thread
func (r *MessageThreadRepository) AddParticipant(ctx context.Context, threadID int64, user *models.User) error {
	thread := models.MessageThread{ID: threadID}
	return Translate(r.db.WithContext(ctx).Model(&thread).Association("Participants").Append(user))
}

// ListByProject retrieves threads for a project, most recently updated first
func (r *MessageThreadRepository) ListByProject(ctx context.Context, projectID int64) ([]*models.MessageThread, error) {
	var threads []*models.MessageThread
	if err := r.db.WithContext(ctx).
		Preload("Participants").
		Where("project_id = ?", projectID).
		Order("updated_at DESC").
		Find(&threads).Error; err != nil {
		return nil, Translate(err)
	}
	return threads, nil
}

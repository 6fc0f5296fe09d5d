package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
)

// MessageService handles the messaging write path
type MessageService struct {
	repo   *db.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewMessageService creates a new message service
func NewMessageService(repo *db.Repository, logger *zap.Logger) *MessageService {
	return &MessageService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func validateMessage(message *models.Message) error {
	if err := validateRequired("content", message.Content); err != nil {
		return err
	}
	if err := validateMaxLen("subject", message.Subject, 200); err != nil {
		return err
	}
	if err := validateChoice("message_type", message.MessageType, models.MessageTypes); err != nil {
		return err
	}
	// Anonymous senders must identify themselves somehow
	if !message.SenderID.Valid && message.SenderName == "" && message.SenderEmail == "" {
		return &db.ValidationError{Field: "sender", Reason: "anonymous messages require sender_name or sender_email"}
	}
	return nil
}

// Send validates and persists a new message. The sender may be anonymous;
// the recipient must exist.
func (s *MessageService) Send(ctx context.Context, message *models.Message) error {
	if message.MessageType == "" {
		message.MessageType = models.MessageTypeGeneral
	}
	if err := validateMessage(message); err != nil {
		return err
	}

	if err := db.NewMessageRepository(s.repo).Create(ctx, message); err != nil {
		return err
	}
	s.logger.Info("Message sent",
		zap.Int64("message_id", message.ID),
		zap.Int64("project_id", message.ProjectID),
		zap.Int64("recipient_id", message.RecipientID),
		zap.String("type", message.MessageType))
	return nil
}

// MarkAsRead marks a message read. read_at is set only on the first
// false-to-true transition; re-reading does not move it.
func (s *MessageService) MarkAsRead(ctx context.Context, messageID int64) (*models.Message, error) {
	messageRepo := db.NewMessageRepository(s.repo)
	message, err := messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.IsRead {
		return message, nil
	}

	message.IsRead = true
	message.ReadAt = sql.NullTime{Time: s.now(), Valid: true}
	if err := messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// MarkManyRead marks a batch of messages read and reports how many rows
// actually changed. Messages already read are left untouched.
func (s *MessageService) MarkManyRead(ctx context.Context, ids []int64) (int64, error) {
	updated, err := db.NewMessageRepository(s.repo).MarkRead(ctx, ids, s.now())
	if err != nil {
		return 0, err
	}
	s.logger.Info("Messages marked read",
		zap.Int("requested", len(ids)),
		zap.Int64("updated", updated))
	return updated, nil
}

// Archive marks a message archived
func (s *MessageService) Archive(ctx context.Context, messageID int64) error {
	messageRepo := db.NewMessageRepository(s.repo)
	message, err := messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	message.IsArchived = true
	return messageRepo.Update(ctx, message)
}

// CreateThread validates and persists a new message thread
func (s *MessageService) CreateThread(ctx context.Context, thread *models.MessageThread) error {
	if err := validateRequired("subject", thread.Subject); err != nil {
		return err
	}
	if err := validateMaxLen("subject", thread.Subject, 200); err != nil {
		return err
	}
	return db.NewMessageThreadRepository(s.repo).Create(ctx, thread)
}

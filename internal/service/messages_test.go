package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func TestMessageService_SendValidation(t *testing.T) {
	svc := NewMessageService(db.NewRepository(nil), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		message *models.Message
	}{
		{
			name:    "missing content",
			message: &models.Message{RecipientID: 1},
		},
		{
			name: "invalid type",
			message: &models.Message{
				RecipientID: 1,
				Content:     "hello",
				MessageType: "broadcast",
				SenderName:  "Visitor",
			},
		},
		{
			name: "anonymous without identity",
			message: &models.Message{
				RecipientID: 1,
				Content:     "hello",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Send(ctx, tt.message); !db.IsValidation(err) {
				t.Errorf("Send() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestMessageService_SendDefaultsType(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	svc := NewMessageService(db.NewRepository(tx), zap.NewNop())

	owner := testutil.SeedUser(t, tx, "recipient@example.com")
	sender := testutil.SeedUser(t, tx, "sender@example.com")
	category := testutil.SeedCategory(t, tx, "Travel")
	project := testutil.SeedProject(t, tx, owner, category, "Trip Planner")

	message := &models.Message{
		ProjectID:   project.ID,
		SenderID:    sql.NullInt64{Int64: sender.ID, Valid: true},
		RecipientID: owner.ID,
		Content:     "can I help with this?",
	}
	if err := svc.Send(ctx, message); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if message.MessageType != models.MessageTypeGeneral {
		t.Errorf("MessageType = %s, want general", message.MessageType)
	}
}

func TestMessageService_MarkAsReadTransition(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	svc := NewMessageService(db.NewRepository(tx), zap.NewNop())

	owner := testutil.SeedUser(t, tx, "reader@example.com")
	category := testutil.SeedCategory(t, tx, "Music")
	project := testutil.SeedProject(t, tx, owner, category, "Chord Trainer")

	message := &models.Message{
		ProjectID:   project.ID,
		RecipientID: owner.ID,
		SenderName:  "Visitor",
		Content:     "is this still active?",
	}
	if err := svc.Send(ctx, message); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	firstRead := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return firstRead }

	read, err := svc.MarkAsRead(ctx, message.ID)
	if err != nil {
		t.Fatalf("MarkAsRead() error = %v", err)
	}
	if !read.IsRead || !read.ReadAt.Valid || !read.ReadAt.Time.Equal(firstRead) {
		t.Errorf("MarkAsRead() = is_read %v read_at %v, want read at %v", read.IsRead, read.ReadAt, firstRead)
	}

	// Re-reading keeps the original timestamp
	svc.now = func() time.Time { return firstRead.Add(time.Hour) }
	again, err := svc.MarkAsRead(ctx, message.ID)
	if err != nil {
		t.Fatalf("MarkAsRead() second call error = %v", err)
	}
	if !again.ReadAt.Time.Equal(firstRead) {
		t.Errorf("ReadAt moved to %v on second read, want %v", again.ReadAt.Time, firstRead)
	}
}

func TestMessageService_CreateThreadValidation(t *testing.T) {
	svc := NewMessageService(db.NewRepository(nil), zap.NewNop())

	err := svc.CreateThread(context.Background(), &models.MessageThread{ProjectID: 1})
	if !db.IsValidation(err) {
		t.Errorf("CreateThread() empty subject error = %v, want ValidationError", err)
	}
}

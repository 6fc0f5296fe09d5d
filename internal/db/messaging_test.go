package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func seedMessage(t *testing.T, repo *MessageRepository, project *models.ProjectIdea, recipient *models.User) *models.Message {
	t.Helper()
	message := &models.Message{
		ProjectID:   project.ID,
		RecipientID: recipient.ID,
		SenderName:  "Visitor",
		Content:     "interested in this project",
		MessageType: models.MessageTypeInquiry,
	}
	if err := repo.Create(context.Background(), message); err != nil {
		t.Fatalf("Create() message error = %v", err)
	}
	return message
}

func TestMessageRepository_MarkRead(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewMessageRepository(NewRepository(tx))

	owner := testutil.SeedUser(t, tx, "owner@example.com")
	category := testutil.SeedCategory(t, tx, "Robotics")
	project := testutil.SeedProject(t, tx, owner, category, "Arm Controller")

	first := seedMessage(t, repo, project, owner)
	second := seedMessage(t, repo, project, owner)

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	updated, err := repo.MarkRead(ctx, []int64{first.ID, second.ID}, at)
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if updated != 2 {
		t.Errorf("MarkRead() updated = %d, want 2", updated)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsRead || !got.ReadAt.Valid {
		t.Errorf("message not marked read: is_read=%v read_at=%v", got.IsRead, got.ReadAt)
	}

	// Marking again touches no rows; read_at stays put
	updated, err = repo.MarkRead(ctx, []int64{first.ID, second.ID}, at.Add(time.Hour))
	if err != nil {
		t.Fatalf("MarkRead() second call error = %v", err)
	}
	if updated != 0 {
		t.Errorf("MarkRead() second call updated = %d, want 0", updated)
	}
	again, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !again.ReadAt.Time.Equal(got.ReadAt.Time) {
		t.Errorf("read_at moved from %v to %v on re-read", got.ReadAt.Time, again.ReadAt.Time)
	}
}

func TestMessageRepository_MarkSpam(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewMessageRepository(NewRepository(tx))

	owner := testutil.SeedUser(t, tx, "spamtarget@example.com")
	category := testutil.SeedCategory(t, tx, "Finance")
	project := testutil.SeedProject(t, tx, owner, category, "Budget Tracker")

	first := seedMessage(t, repo, project, owner)
	second := seedMessage(t, repo, project, owner)

	updated, err := repo.MarkSpam(ctx, []int64{first.ID, second.ID})
	if err != nil {
		t.Fatalf("MarkSpam() error = %v", err)
	}
	if updated != 2 {
		t.Errorf("MarkSpam() updated = %d, want 2", updated)
	}

	got, err := repo.GetByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsSpam {
		t.Error("message not marked spam")
	}
}

func TestMessageRepository_ListByRecipient(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewMessageRepository(NewRepository(tx))

	owner := testutil.SeedUser(t, tx, "inbox@example.com")
	category := testutil.SeedCategory(t, tx, "Health")
	project := testutil.SeedProject(t, tx, owner, category, "Sleep Log")

	read := seedMessage(t, repo, project, owner)
	seedMessage(t, repo, project, owner)

	if _, err := repo.MarkRead(ctx, []int64{read.ID}, time.Now().UTC()); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	all, err := repo.ListByRecipient(ctx, owner.ID, false)
	if err != nil {
		t.Fatalf("ListByRecipient() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListByRecipient(all) returned %d messages, want 2", len(all))
	}

	unread, err := repo.ListByRecipient(ctx, owner.ID, true)
	if err != nil {
		t.Fatalf("ListByRecipient() unread error = %v", err)
	}
	if len(unread) != 1 {
		t.Errorf("ListByRecipient(unread) returned %d messages, want 1", len(unread))
	}
}

func TestUserDeleteNullifiesSentMessages(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewMessageRepository(NewRepository(tx))

	owner := testutil.SeedUser(t, tx, "recipient@example.com")
	sender := testutil.SeedUser(t, tx, "departing@example.com")
	category := testutil.SeedCategory(t, tx, "Music")
	project := testutil.SeedProject(t, tx, owner, category, "Chord Trainer")

	message := &models.Message{
		ProjectID:   project.ID,
		SenderID:    sql.NullInt64{Int64: sender.ID, Valid: true},
		RecipientID: owner.ID,
		Content:     "can I join?",
		MessageType: models.MessageTypeCollaboration,
	}
	if err := repo.Create(ctx, message); err != nil {
		t.Fatalf("Create() message error = %v", err)
	}

	view := &models.ProjectView{
		ProjectID: project.ID,
		UserID:    sql.NullInt64{Int64: sender.ID, Valid: true},
		SessionID: "sess-depart",
		IPAddress: "203.0.113.9",
	}
	if err := NewProjectViewRepository(NewRepository(tx)).Create(ctx, view); err != nil {
		t.Fatalf("Create() view error = %v", err)
	}

	if err := NewUserRepository(NewRepository(tx)).Delete(ctx, sender.ID); err != nil {
		t.Fatalf("Delete() user error = %v", err)
	}

	// The message survives the sender with sender_id nulled out
	got, err := repo.GetByID(ctx, message.ID)
	if err != nil {
		t.Fatalf("GetByID() after user delete error = %v", err)
	}
	if got.SenderID.Valid {
		t.Errorf("SenderID = %v, want NULL", got.SenderID)
	}

	// Same for the view log entry
	var gotView models.ProjectView
	if err := tx.First(&gotView, view.ID).Error; err != nil {
		t.Fatalf("reload view: %v", err)
	}
	if gotView.UserID.Valid {
		t.Errorf("view UserID = %v, want NULL", gotView.UserID)
	}
}

func TestMessageThreadRepository_Participants(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewMessageThreadRepository(NewRepository(tx))

	owner := testutil.SeedUser(t, tx, "threadowner@example.com")
	guest := testutil.SeedUser(t, tx, "threadguest@example.com")
	category := testutil.SeedCategory(t, tx, "Education")
	project := testutil.SeedProject(t, tx, owner, category, "Flashcards")

	thread := &models.MessageThread{ProjectID: project.ID, Subject: "Collaboration"}
	if err := repo.Create(ctx, thread); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.AddParticipant(ctx, thread.ID, owner); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}
	if err := repo.AddParticipant(ctx, thread.ID, guest); err != nil {
		t.Fatalf("AddParticipant() error = %v", err)
	}

	got, err := repo.GetByID(ctx, thread.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(got.Participants) != 2 {
		t.Errorf("Participants = %d, want 2", len(got.Participants))
	}
}

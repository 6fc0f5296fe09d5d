package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func TestCommentService_PostReplyCrossProject(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	svc := NewCommentService(db.NewRepository(tx), zap.NewNop())

	author := testutil.SeedUser(t, tx, "replier@example.com")
	category := testutil.SeedCategory(t, tx, "Gardening")
	first := testutil.SeedProject(t, tx, author, category, "Plant Log")
	second := testutil.SeedProject(t, tx, author, category, "Seed Swap")
	parent := testutil.SeedComment(t, tx, first, author, "root comment")

	err := svc.Post(ctx, &models.Comment{
		ProjectID: second.ID,
		AuthorID:  author.ID,
		ParentID:  sql.NullInt64{Int64: parent.ID, Valid: true},
		Content:   "reply on the wrong project",
	})
	if !db.IsValidation(err) {
		t.Errorf("Post() cross-project reply error = %v, want ValidationError", err)
	}

	if err := svc.Post(ctx, &models.Comment{
		ProjectID: first.ID,
		AuthorID:  author.ID,
		ParentID:  sql.NullInt64{Int64: parent.ID, Valid: true},
		Content:   "reply on the right project",
	}); err != nil {
		t.Fatalf("Post() valid reply error = %v", err)
	}
}

func TestCommentService_EditMarksEdited(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	svc := NewCommentService(db.NewRepository(tx), zap.NewNop())

	author := testutil.SeedUser(t, tx, "editor@example.com")
	category := testutil.SeedCategory(t, tx, "Cooking")
	project := testutil.SeedProject(t, tx, author, category, "Recipe Box")
	comment := testutil.SeedComment(t, tx, project, author, "first draft")

	edited, err := svc.Edit(ctx, comment.ID, "second draft")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.Content != "second draft" || !edited.IsEdited {
		t.Errorf("Edit() = content %q is_edited %v", edited.Content, edited.IsEdited)
	}

	if _, err := svc.Edit(ctx, comment.ID, ""); !db.IsValidation(err) {
		t.Errorf("Edit() empty content error = %v, want ValidationError", err)
	}
}

func TestCommentService_SoftDeleteFlavors(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := db.NewRepository(tx)
	svc := NewCommentService(repo, zap.NewNop())

	author := testutil.SeedUser(t, tx, "deleter@example.com")
	category := testutil.SeedCategory(t, tx, "Fitness")
	project := testutil.SeedProject(t, tx, author, category, "Rep Counter")

	own := testutil.SeedComment(t, tx, project, author, "my comment")
	if err := svc.SoftDelete(ctx, own.ID, false); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	got, err := db.NewCommentRepository(repo).GetByID(ctx, own.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsDeleted || got.ModeratorDeleted {
		t.Errorf("author delete = is_deleted %v moderator_deleted %v", got.IsDeleted, got.ModeratorDeleted)
	}

	other := testutil.SeedComment(t, tx, project, author, "another comment")
	if err := svc.SoftDelete(ctx, other.ID, true); err != nil {
		t.Fatalf("SoftDelete() by moderator error = %v", err)
	}
	got, err = db.NewCommentRepository(repo).GetByID(ctx, other.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.IsDeleted || !got.ModeratorDeleted {
		t.Errorf("moderator delete = is_deleted %v moderator_deleted %v", got.IsDeleted, got.ModeratorDeleted)
	}
}

func TestCommentService_Flag(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := db.NewRepository(tx)
	svc := NewCommentService(repo, zap.NewNop())

	author := testutil.SeedUser(t, tx, "flagger@example.com")
	category := testutil.SeedCategory(t, tx, "News")
	project := testutil.SeedProject(t, tx, author, category, "Headline Digest")
	comment := testutil.SeedComment(t, tx, project, author, "questionable")

	if err := svc.Flag(ctx, comment.ID, strings.Repeat("x", 101)); !db.IsValidation(err) {
		t.Errorf("Flag() long reason error = %v, want ValidationError", err)
	}

	if err := svc.Flag(ctx, comment.ID, "spam"); err != nil {
		t.Fatalf("Flag() error = %v", err)
	}
	got, err := db.NewCommentRepository(repo).GetByID(ctx, comment.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsFlagged || got.FlagReason != "spam" {
		t.Errorf("Flag() = is_flagged %v reason %q", got.IsFlagged, got.FlagReason)
	}
}

package db

import (
	"context"
	"testing"

	"github.com/ideahub/ideahub/internal/db/testutil"
	"github.com/ideahub/ideahub/internal/models"
)

func TestCategoryRepository_UniqueName(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewCategoryRepository(NewRepository(tx))

	if err := repo.Create(ctx, &models.Category{Name: "Web Development"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Create(ctx, &models.Category{Name: "Web Development"})
	if !IsConstraintViolation(err) {
		t.Errorf("Create() duplicate name error = %v, want ConstraintViolationError", err)
	}
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))

	_, err := NewProjectRepository(NewRepository(tx)).GetByID(context.Background(), 999999)
	if !IsNotFound(err) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepository_TagLinks(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewRepository(tx)

	author := testutil.SeedUser(t, tx, "author@example.com")
	category := testutil.SeedCategory(t, tx, "AI")
	project := testutil.SeedProject(t, tx, author, category, "Chatbot")

	tag := &models.Tag{Name: "python"}
	if err := NewTagRepository(repo).Create(ctx, tag); err != nil {
		t.Fatalf("Create() tag error = %v", err)
	}

	projects := NewProjectRepository(repo)
	if err := projects.AddTag(ctx, project.ID, tag.ID); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}

	// Linking the same tag twice hits the composite unique index
	if err := projects.AddTag(ctx, project.ID, tag.ID); !IsConstraintViolation(err) {
		t.Errorf("AddTag() duplicate error = %v, want ConstraintViolationError", err)
	}

	tags, err := projects.TagsFor(ctx, project.ID)
	if err != nil {
		t.Fatalf("TagsFor() error = %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "python" {
		t.Errorf("TagsFor() = %v, want [python]", tags)
	}

	if err := projects.RemoveTag(ctx, project.ID, tag.ID); err != nil {
		t.Fatalf("RemoveTag() error = %v", err)
	}
	if err := projects.RemoveTag(ctx, project.ID, tag.ID); !IsNotFound(err) {
		t.Errorf("RemoveTag() missing link error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewRepository(tx)

	author := testutil.SeedUser(t, tx, "cascade@example.com")
	category := testutil.SeedCategory(t, tx, "IoT")
	project := testutil.SeedProject(t, tx, author, category, "Sensor Hub")

	if err := NewProjectLikeRepository(repo).Create(ctx, &models.ProjectLike{
		ProjectID: project.ID,
		UserID:    author.ID,
	}); err != nil {
		t.Fatalf("Create() like error = %v", err)
	}
	testutil.SeedComment(t, tx, project, author, "nice")

	if err := NewProjectRepository(repo).Delete(ctx, project.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var likes int64
	if err := tx.Model(&models.ProjectLike{}).Where("project_id = ?", project.ID).Count(&likes).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if likes != 0 {
		t.Errorf("likes after project delete = %d, want 0", likes)
	}

	var comments int64
	if err := tx.Model(&models.Comment{}).Where("project_id = ?", project.ID).Count(&comments).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if comments != 0 {
		t.Errorf("comments after project delete = %d, want 0", comments)
	}
}

func TestProjectRepository_ListByStatus(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewRepository(tx)

	author := testutil.SeedUser(t, tx, "lister@example.com")
	category := testutil.SeedCategory(t, tx, "Games")
	testutil.SeedProject(t, tx, author, category, "Draft One")
	published := testutil.SeedProject(t, tx, author, category, "Live One")
	published.Status = models.StatusPublished
	if err := NewProjectRepository(repo).Update(ctx, published); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	drafts, err := NewProjectRepository(repo).ListByStatus(ctx, models.StatusDraft, 0)
	if err != nil {
		t.Fatalf("ListByStatus() error = %v", err)
	}
	if len(drafts) != 1 || drafts[0].Title != "Draft One" {
		t.Errorf("ListByStatus(draft) = %v, want [Draft One]", drafts)
	}
}

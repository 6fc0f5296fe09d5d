package testutil

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/ideahub/ideahub/internal/models"
)

// SeedUser inserts a minimal user row
func SeedUser(tb testing.TB, tx *gorm.DB, email string) *models.User {
	tb.Helper()
	user := &models.User{
		Email:             email,
		Username:          email,
		ContactPreference: models.ContactPreferencePlatform,
		Preferences:       models.DefaultPreferences(),
		Stats:             models.DefaultStats(),
		IsActive:          true,
	}
	if err := tx.Create(user).Error; err != nil {
		tb.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

// SeedCategory inserts a category row
func SeedCategory(tb testing.TB, tx *gorm.DB, name string) *models.Category {
	tb.Helper()
	category := &models.Category{
		Name:     name,
		Color:    "#007bff",
		IsActive: true,
	}
	if err := tx.Create(category).Error; err != nil {
		tb.Fatalf("seed category %s: %v", name, err)
	}
	return category
}

// SeedProject inserts a draft project owned by author in category
func SeedProject(tb testing.TB, tx *gorm.DB, author *models.User, category *models.Category, title string) *models.ProjectIdea {
	tb.Helper()
	project := &models.ProjectIdea{
		Title:                title,
		Description:          fmt.Sprintf("%s description", title),
		CategoryID:           category.ID,
		Difficulty:           models.DifficultyBeginner,
		EstimatedTime:        models.TimeEstimateWeeks,
		Status:               models.StatusDraft,
		AuthorID:             author.ID,
		IsOpenForInspiration: true,
	}
	if err := tx.Create(project).Error; err != nil {
		tb.Fatalf("seed project %s: %v", title, err)
	}
	return project
}

// SeedComment inserts a top-level comment on project by author
func SeedComment(tb testing.TB, tx *gorm.DB, project *models.ProjectIdea, author *models.User, content string) *models.Comment {
	tb.Helper()
	comment := &models.Comment{
		ProjectID: project.ID,
		AuthorID:  author.ID,
		Content:   content,
	}
	if err := tx.Create(comment).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return comment
}

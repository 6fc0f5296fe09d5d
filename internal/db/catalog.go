package db

import (
	"context"

	"github.com/ideahub/ideahub/internal/models"
)

// CategoryRepository provides category-related database operations
type CategoryRepository struct {
	*Repository
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(repo *Repository) *CategoryRepository {
	return &CategoryRepository{Repository: repo}
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &category, nil
}

// GetByName retrieves a category by name
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, Translate(err)
	}
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return Translate(r.db.WithContext(ctx).Create(category).Error)
}

// Update updates a category
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	return Translate(r.db.WithContext(ctx).Save(category).Error)
}

// Delete deletes a category and cascades to its projects
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves categories, optionally only active ones
func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var categories []*models.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, Translate(err)
	}
	return categories, nil
}

// TagRepository provides tag-related database operations
type TagRepository struct {
	*Repository
}

// NewTagRepository creates a new tag repository
func NewTagRepository(repo *Repository) *TagRepository {
	return &TagRepository{Repository: repo}
}

// GetByID retrieves a tag by ID
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &tag, nil
}

// GetByName retrieves a tag by name
func (r *TagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, Translate(err)
	}
	return &tag, nil
}

// Create creates a new tag
func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return Translate(r.db.WithContext(ctx).Create(tag).Error)
}

// Update updates a tag, preserving whatever usage_count was written
func (r *TagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return Translate(r.db.WithContext(ctx).Save(tag).Error)
}

// Delete deletes a tag and cascades to its project links
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Tag{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List retrieves tags ordered by usage
func (r *TagRepository) List(ctx context.Context, limit int) ([]*models.Tag, error) {
	var tags []*models.Tag
	q := r.db.WithContext(ctx).Order("usage_count DESC, name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&tags).Error; err != nil {
		return nil, Translate(err)
	}
	return tags, nil
}

// ProjectRepository provides project-related database operations
type ProjectRepository struct {
	*Repository
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(repo *Repository) *ProjectRepository {
	return &ProjectRepository{Repository: repo}
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.ProjectIdea, error) {
	var project models.ProjectIdea
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, Translate(err)
	}
	return &project, nil
}

// GetByTitle retrieves a project by its exact title
func (r *ProjectRepository) GetByTitle(ctx context.Context, title string) (*models.ProjectIdea, error) {
	var project models.ProjectIdea
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&project).Error; err != nil {
		return nil, Translate(err)
	}
	return &project, nil
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.ProjectIdea) error {
	return Translate(r.db.WithContext(ctx).Create(project).Error)
}

// Update updates a project
func (r *ProjectRepository) Update(ctx context.Context, project *models.ProjectIdea) error {
	return Translate(r.db.WithContext(ctx).Save(project).Error)
}

// Delete deletes a project and cascades to comments, likes, views, tag
// links, stats, messages, analytics and trending records
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.ProjectIdea{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByStatus retrieves projects in a given status, newest first
func (r *ProjectRepository) ListByStatus(ctx context.Context, status string, limit int) ([]*models.ProjectIdea, error) {
	var projects []*models.ProjectIdea
	q := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, Translate(err)
	}
	return projects, nil
}

// ListByAuthor retrieves projects authored by a user, newest first
func (r *ProjectRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*models.ProjectIdea, error) {
	var projects []*models.ProjectIdea
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, Translate(err)
	}
	return projects, nil
}

// AddTag links a tag to a project. A duplicate link fails with
// ConstraintViolation.
func (r *ProjectRepository) AddTag(ctx context.Context, projectID, tagID int64) error {
	link := &models.ProjectTag{ProjectID: projectID, TagID: tagID}
	return Translate(r.db.WithContext(ctx).Create(link).Error)
}

// RemoveTag unlinks a tag from a project
func (r *ProjectRepository) RemoveTag(ctx context.Context, projectID, tagID int64) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND tag_id = ?", projectID, tagID).
		Delete(&models.ProjectTag{})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TagsFor retrieves the tags linked to a project
func (r *ProjectRepository) TagsFor(ctx context.Context, projectID int64) ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.WithContext(ctx).
		Joins("JOIN project_tags ON project_tags.tag_id = tags.id").
		Where("project_tags.project_id = ?", projectID).
		Order("tags.name ASC").
		Find(&tags).Error; err != nil {
		return nil, Translate(err)
	}
	return tags, nil
}

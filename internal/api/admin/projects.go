package admin

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
	"github.com/ideahub/ideahub/internal/service"
	"github.com/ideahub/ideahub/pkg/config"
)

// ProjectsAPI provides admin methods over the catalog: projects,
// categories, tags and the engagement records hanging off projects
type ProjectsAPI struct {
	repo     *db.Repository
	projects *service.ProjectService
	cfg      *config.AdminConfig
}

// NewProjectsAPI creates a new projects admin API
func NewProjectsAPI(repo *db.Repository, projects *service.ProjectService, cfg *config.AdminConfig) *ProjectsAPI {
	return &ProjectsAPI{repo: repo, projects: projects, cfg: cfg}
}

var projectSurface = surface{
	filterFields: []string{"status", "difficulty", "category_id", "is_featured", "is_open_for_inspiration", "author_id"},
	searchFields: []string{"title", "description"},
	orderFields:  []string{"title", "status", "created_at", "published_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// ListProjects handles admin.list_projects
func (a *ProjectsAPI) ListProjects(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, projectSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.ProjectIdea{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var projects []*models.ProjectIdea
	if err := params.Apply(q).Find(&projects).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: projects}, nil
}

// GetProject handles admin.get_project, returning the project with its
// tags and stats when present
func (a *ProjectsAPI) GetProject(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	rctx := ctx.Request.Context()
	project, err := db.NewProjectRepository(a.repo).GetByID(rctx, req.ID)
	if err != nil {
		return nil, err
	}

	tags, err := db.NewProjectRepository(a.repo).TagsFor(rctx, req.ID)
	if err != nil {
		return nil, err
	}

	result := gin.H{"project": project, "tags": tags}

	stats, err := db.NewProjectStatsRepository(a.repo).GetByProject(rctx, req.ID)
	if err == nil {
		result["stats"] = stats
	} else if !db.IsNotFound(err) {
		return nil, err
	}

	return result, nil
}

// CreateProject handles admin.create_project
func (a *ProjectsAPI) CreateProject(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var project models.ProjectIdea
	if err := decodeParams(raw, &project); err != nil {
		return nil, err
	}
	if err := a.projects.Create(ctx.Request.Context(), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject handles admin.update_project
func (a *ProjectsAPI) UpdateProject(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var project models.ProjectIdea
	if err := decodeParams(raw, &project); err != nil {
		return nil, err
	}
	if err := a.projects.Update(ctx.Request.Context(), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject handles admin.delete_project
func (a *ProjectsAPI) DeleteProject(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.projects.Delete(ctx.Request.Context(), req.ID); err != nil {
		return nil, err
	}
	return gin.H{"deleted": req.ID}, nil
}

// ReviewProject handles admin.review_project. The actor is the
// authenticated admin identity supplied by the request layer; a transition
// into published or rejected records it as the reviewer.
func (a *ProjectsAPI) ReviewProject(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID      int64  `json:"id"`
		Status  string `json:"status"`
		ActorID int64  `json:"actor_id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	return a.projects.Transition(ctx.Request.Context(), req.ID, req.Status, req.ActorID)
}

// AttachTag handles admin.attach_tag
func (a *ProjectsAPI) AttachTag(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ProjectID int64  `json:"project_id"`
		Tag       string `json:"tag"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.projects.AttachTag(ctx.Request.Context(), req.ProjectID, req.Tag); err != nil {
		return nil, err
	}
	return db.NewProjectRepository(a.repo).TagsFor(ctx.Request.Context(), req.ProjectID)
}

// DetachTag handles admin.detach_tag
func (a *ProjectsAPI) DetachTag(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ProjectID int64 `json:"project_id"`
		TagID     int64 `json:"tag_id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.projects.DetachTag(ctx.Request.Context(), req.ProjectID, req.TagID); err != nil {
		return nil, err
	}
	return gin.H{"detached": req.TagID}, nil
}

var categorySurface = surface{
	filterFields: []string{"is_active"},
	searchFields: []string{"name", "description"},
	orderFields:  []string{"name", "created_at"},
	defaultOrder: "name",
}

// ListCategories handles admin.list_categories
func (a *ProjectsAPI) ListCategories(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, categorySurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.Category{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var categories []*models.Category
	if err := params.Apply(q).Find(&categories).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: categories}, nil
}

// CreateCategory handles admin.create_category
func (a *ProjectsAPI) CreateCategory(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var category models.Category
	if err := decodeParams(raw, &category); err != nil {
		return nil, err
	}
	if err := db.NewCategoryRepository(a.repo).Create(ctx.Request.Context(), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory handles admin.update_category
func (a *ProjectsAPI) UpdateCategory(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var category models.Category
	if err := decodeParams(raw, &category); err != nil {
		return nil, err
	}
	if err := db.NewCategoryRepository(a.repo).Update(ctx.Request.Context(), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory handles admin.delete_category; the category's projects
// cascade with it
func (a *ProjectsAPI) DeleteCategory(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := db.NewCategoryRepository(a.repo).Delete(ctx.Request.Context(), req.ID); err != nil {
		return nil, err
	}
	return gin.H{"deleted": req.ID}, nil
}

var tagSurface = surface{
	filterFields: []string{},
	searchFields: []string{"name"},
	orderFields:  []string{"name", "usage_count", "created_at"},
	defaultOrder: "usage_count",
	defaultDesc:  true,
}

// ListTags handles admin.list_tags
func (a *ProjectsAPI) ListTags(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, tagSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.Tag{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var tags []*models.Tag
	if err := params.Apply(q).Find(&tags).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: tags}, nil
}

var likeSurface = surface{
	filterFields: []string{"project_id", "user_id"},
	searchFields: []string{},
	orderFields:  []string{"created_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// ListLikes handles admin.list_likes
func (a *ProjectsAPI) ListLikes(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, likeSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.ProjectLike{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var likes []*models.ProjectLike
	if err := params.Apply(q).Find(&likes).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: likes}, nil
}

var viewSurface = surface{
	filterFields: []string{"project_id", "user_id", "ip_address"},
	searchFields: []string{"ip_address", "session_id"},
	orderFields:  []string{"created_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// ListViews handles admin.list_views. View records are an append-only log;
// there is no create method.
func (a *ProjectsAPI) ListViews(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, viewSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.ProjectView{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var views []*models.ProjectView
	if err := params.Apply(q).Find(&views).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: views}, nil
}

var statsSurface = surface{
	filterFields: []string{"project_id"},
	searchFields: []string{},
	orderFields:  []string{"view_count", "like_count", "comment_count", "share_count", "last_updated"},
	defaultOrder: "last_updated",
	defaultDesc:  true,
}

// ListStats handles admin.list_project_stats. Stats rows are maintained by
// the aggregation job; there is no create method.
func (a *ProjectsAPI) ListStats(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, statsSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.ProjectStats{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var stats []*models.ProjectStats
	if err := params.Apply(q).Find(&stats).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: stats}, nil
}

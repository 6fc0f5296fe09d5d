package admin

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
	"github.com/ideahub/ideahub/internal/service"
	"github.com/ideahub/ideahub/pkg/config"
)

// UsersAPI provides admin methods over users and their activity log
type UsersAPI struct {
	repo  *db.Repository
	users *service.UserService
	cfg   *config.AdminConfig
}

// NewUsersAPI creates a new users admin API
func NewUsersAPI(repo *db.Repository, users *service.UserService, cfg *config.AdminConfig) *UsersAPI {
	return &UsersAPI{repo: repo, users: users, cfg: cfg}
}

var userSurface = surface{
	filterFields: []string{"is_staff", "is_active", "is_verified", "contact_preference"},
	searchFields: []string{"email", "username", "first_name", "last_name"},
	orderFields:  []string{"email", "username", "join_date"},
	defaultOrder: "join_date",
	defaultDesc:  true,
}

// ListUsers handles admin.list_users
func (a *UsersAPI) ListUsers(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, userSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.User{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var users []*models.User
	if err := params.Apply(q).Find(&users).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: users}, nil
}

// GetUser handles admin.get_user
func (a *UsersAPI) GetUser(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	return db.NewUserRepository(a.repo).GetByID(ctx.Request.Context(), req.ID)
}

// CreateUser handles admin.create_user
func (a *UsersAPI) CreateUser(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var user models.User
	if err := decodeParams(raw, &user); err != nil {
		return nil, err
	}
	if err := a.users.Create(ctx.Request.Context(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser handles admin.update_user
func (a *UsersAPI) UpdateUser(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var user models.User
	if err := decodeParams(raw, &user); err != nil {
		return nil, err
	}
	if err := a.users.Update(ctx.Request.Context(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser handles admin.delete_user
func (a *UsersAPI) DeleteUser(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.users.Delete(ctx.Request.Context(), req.ID); err != nil {
		return nil, err
	}
	return gin.H{"deleted": req.ID}, nil
}

var activitySurface = surface{
	filterFields: []string{"activity_type", "user_id"},
	searchFields: []string{"description"},
	orderFields:  []string{"created_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// ListActivities handles admin.list_activities. Activity records are
// written by the platform, never created here.
func (a *UsersAPI) ListActivities(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, activitySurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.UserActivity{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var activities []*models.UserActivity
	if err := params.Apply(q).Find(&activities).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: activities}, nil
}

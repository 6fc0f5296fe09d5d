package admin

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
	"github.com/ideahub/ideahub/internal/service"
	"github.com/ideahub/ideahub/pkg/config"
)

// CommentsAPI provides admin methods over comments and comment likes
type CommentsAPI struct {
	repo     *db.Repository
	comments *service.CommentService
	cfg      *config.AdminConfig
}

// NewCommentsAPI creates a new comments admin API
func NewCommentsAPI(repo *db.Repository, comments *service.CommentService, cfg *config.AdminConfig) *CommentsAPI {
	return &CommentsAPI{repo: repo, comments: comments, cfg: cfg}
}

var commentSurface = surface{
	filterFields: []string{"project_id", "author_id", "is_edited", "is_deleted", "moderator_deleted", "is_flagged"},
	searchFields: []string{"content"},
	orderFields:  []string{"created_at", "updated_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// commentRow is the list representation of a comment. Content is truncated
// for display; the full body comes back from admin.get_comment.
type commentRow struct {
	*models.Comment
	ContentPreview string `json:"content_preview"`
	IsReply        bool   `json:"is_reply"`
}

// ListComments handles admin.list_comments
func (a *CommentsAPI) ListComments(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, commentSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.Comment{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var comments []*models.Comment
	if err := params.Apply(q).Find(&comments).Error; err != nil {
		return nil, db.Translate(err)
	}

	rows := make([]commentRow, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, commentRow{
			Comment:        c,
			ContentPreview: truncate(c.Content, 50),
			IsReply:        c.IsReply(),
		})
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

// GetComment handles admin.get_comment
func (a *CommentsAPI) GetComment(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	return db.NewCommentRepository(a.repo).GetByID(ctx.Request.Context(), req.ID)
}

// DeleteComment handles admin.delete_comment. Deletion here is the
// moderator soft delete; the row and its reply tree stay in the store.
func (a *CommentsAPI) DeleteComment(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.comments.SoftDelete(ctx.Request.Context(), req.ID, true); err != nil {
		return nil, err
	}
	return gin.H{"deleted": req.ID}, nil
}

// FlagComment handles admin.flag_comment
func (a *CommentsAPI) FlagComment(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID     int64  `json:"id"`
		Reason string `json:"reason"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.comments.Flag(ctx.Request.Context(), req.ID, req.Reason); err != nil {
		return nil, err
	}
	return gin.H{"flagged": req.ID}, nil
}

// ListReplies handles admin.list_replies, returning the visible reply tree
// under one comment
func (a *CommentsAPI) ListReplies(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	return a.comments.Replies(ctx.Request.Context(), req.ID)
}

var commentLikeSurface = surface{
	filterFields: []string{"comment_id", "user_id"},
	searchFields: []string{},
	orderFields:  []string{"created_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// ListCommentLikes handles admin.list_comment_likes
func (a *CommentsAPI) ListCommentLikes(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, commentLikeSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.CommentLike{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var likes []*models.CommentLike
	if err := params.Apply(q).Find(&likes).Error; err != nil {
		return nil, db.Translate(err)
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: likes}, nil
}

package admin

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/models"
	"github.com/ideahub/ideahub/internal/service"
	"github.com/ideahub/ideahub/pkg/config"
)

// MessagesAPI provides admin methods over messages and message threads
type MessagesAPI struct {
	repo     *db.Repository
	messages *service.MessageService
	cfg      *config.AdminConfig
}

// NewMessagesAPI creates a new messages admin API
func NewMessagesAPI(repo *db.Repository, messages *service.MessageService, cfg *config.AdminConfig) *MessagesAPI {
	return &MessagesAPI{repo: repo, messages: messages, cfg: cfg}
}

var messageSurface = surface{
	filterFields: []string{"message_type", "is_read", "is_archived", "is_spam", "recipient_id", "project_id"},
	searchFields: []string{"subject", "content", "sender_name", "sender_email"},
	orderFields:  []string{"created_at", "read_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

// messageRow is the list representation of a message. SenderDisplay folds
// registered and anonymous senders into one column.
type messageRow struct {
	*models.Message
	SenderDisplay string `json:"sender_display"`
}

// ListMessages handles admin.list_messages
func (a *MessagesAPI) ListMessages(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, messageSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.Message{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var messages []*models.Message
	if err := params.Apply(q).Preload("Sender").Find(&messages).Error; err != nil {
		return nil, db.Translate(err)
	}

	rows := make([]messageRow, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, messageRow{Message: m, SenderDisplay: m.SenderDisplayName()})
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

// GetMessage handles admin.get_message
func (a *MessagesAPI) GetMessage(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	return db.NewMessageRepository(a.repo).GetByID(ctx.Request.Context(), req.ID)
}

// MarkRead handles admin.mark_messages_read, a bulk action over selected
// messages. Already-read messages keep their original read timestamp.
func (a *MessagesAPI) MarkRead(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if len(req.IDs) == 0 {
		return nil, &db.ValidationError{Field: "ids", Reason: "is required"}
	}
	updated, err := a.messages.MarkManyRead(ctx.Request.Context(), req.IDs)
	if err != nil {
		return nil, err
	}
	return gin.H{"updated": updated}, nil
}

// MarkSpam handles admin.mark_messages_spam, a bulk action over selected
// messages
func (a *MessagesAPI) MarkSpam(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if len(req.IDs) == 0 {
		return nil, &db.ValidationError{Field: "ids", Reason: "is required"}
	}
	updated, err := db.NewMessageRepository(a.repo).MarkSpam(ctx.Request.Context(), req.IDs)
	if err != nil {
		return nil, err
	}
	return gin.H{"updated": updated}, nil
}

// ArchiveMessage handles admin.archive_message
func (a *MessagesAPI) ArchiveMessage(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	if err := a.messages.Archive(ctx.Request.Context(), req.ID); err != nil {
		return nil, err
	}
	return gin.H{"archived": req.ID}, nil
}

var threadSurface = surface{
	filterFields: []string{"project_id"},
	searchFields: []string{"subject"},
	orderFields:  []string{"created_at", "updated_at"},
	defaultOrder: "updated_at",
	defaultDesc:  true,
}

// threadRow is the list representation of a thread
type threadRow struct {
	*models.MessageThread
	ParticipantCount int `json:"participant_count"`
}

// ListThreads handles admin.list_threads
func (a *MessagesAPI) ListThreads(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req ListRequest
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}

	params, err := buildParams(&req, threadSurface, a.cfg)
	if err != nil {
		return nil, err
	}

	q := a.repo.Session().WithContext(ctx.Request.Context()).Model(&models.MessageThread{})
	total, err := params.Count(q)
	if err != nil {
		return nil, err
	}

	var threads []*models.MessageThread
	if err := params.Apply(q).Preload("Participants").Find(&threads).Error; err != nil {
		return nil, db.Translate(err)
	}

	rows := make([]threadRow, 0, len(threads))
	for _, t := range threads {
		rows = append(rows, threadRow{MessageThread: t, ParticipantCount: len(t.Participants)})
	}

	return &ListResponse{Total: total, Page: params.Page, PageSize: params.PageSize, Results: rows}, nil
}

// GetThread handles admin.get_thread
func (a *MessagesAPI) GetThread(ctx *gin.Context, raw json.RawMessage) (interface{}, error) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := decodeParams(raw, &req); err != nil {
		return nil, err
	}
	return db.NewMessageThreadRepository(a.repo).GetByID(ctx.Request.Context(), req.ID)
}

package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/api/admin"
	"github.com/ideahub/ideahub/internal/cache"
	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/service"
	"github.com/ideahub/ideahub/pkg/config"
	"github.com/ideahub/ideahub/pkg/logging"
)

// Router sets up API routes
type Router struct {
	handler *JSONRPCHandler
	db      *db.DB
	cache   *cache.Cache
	cfg     *config.AdminConfig
	logger  *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, cfg *config.AdminConfig) *Router {
	handler := NewJSONRPCHandler()
	router := &Router{
		handler: handler,
		db:      database,
		cache:   redisCache,
		cfg:     cfg,
		logger:  logging.GetLogger().With(zap.String("component", "api-router")),
	}

	// Register all API methods
	router.registerMethods()

	return router
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// JSON-RPC endpoint
	engine.POST("/", r.handler.Handle)
}

// registerMethods registers all API methods
func (r *Router) registerMethods() {
	repo := db.NewRepository(r.db.DB)
	logger := logging.GetLogger()

	users := service.NewUserService(repo, logger)
	projects := service.NewProjectService(repo, logger)
	comments := service.NewCommentService(repo, logger)
	messages := service.NewMessageService(repo, logger)

	// Users and activity log
	usersAPI := admin.NewUsersAPI(repo, users, r.cfg)

	r.handler.RegisterMethod("admin.list_users", usersAPI.ListUsers)
	r.handler.RegisterMethod("admin.get_user", usersAPI.GetUser)
	r.handler.RegisterMethod("admin.create_user", usersAPI.CreateUser)
	r.handler.RegisterMethod("admin.update_user", usersAPI.UpdateUser)
	r.handler.RegisterMethod("admin.delete_user", usersAPI.DeleteUser)
	r.handler.RegisterMethod("admin.list_activities", usersAPI.ListActivities)

	// Catalog: projects, categories, tags, engagement records
	projectsAPI := admin.NewProjectsAPI(repo, projects, r.cfg)

	r.handler.RegisterMethod("admin.list_projects", projectsAPI.ListProjects)
	r.handler.RegisterMethod("admin.get_project", projectsAPI.GetProject)
	r.handler.RegisterMethod("admin.create_project", projectsAPI.CreateProject)
	r.handler.RegisterMethod("admin.update_project", projectsAPI.UpdateProject)
	r.handler.RegisterMethod("admin.delete_project", projectsAPI.DeleteProject)
	r.handler.RegisterMethod("admin.review_project", projectsAPI.ReviewProject)
	r.handler.RegisterMethod("admin.attach_tag", projectsAPI.AttachTag)
	r.handler.RegisterMethod("admin.detach_tag", projectsAPI.DetachTag)
	r.handler.RegisterMethod("admin.list_categories", projectsAPI.ListCategories)
	r.handler.RegisterMethod("admin.create_category", projectsAPI.CreateCategory)
	r.handler.RegisterMethod("admin.update_category", projectsAPI.UpdateCategory)
	r.handler.RegisterMethod("admin.delete_category", projectsAPI.DeleteCategory)
	r.handler.RegisterMethod("admin.list_tags", projectsAPI.ListTags)
	r.handler.RegisterMethod("admin.list_likes", projectsAPI.ListLikes)
	r.handler.RegisterMethod("admin.list_views", projectsAPI.ListViews)
	r.handler.RegisterMethod("admin.list_project_stats", projectsAPI.ListStats)

	// Comments
	commentsAPI := admin.NewCommentsAPI(repo, comments, r.cfg)

	r.handler.RegisterMethod("admin.list_comments", commentsAPI.ListComments)
	r.handler.RegisterMethod("admin.get_comment", commentsAPI.GetComment)
	r.handler.RegisterMethod("admin.delete_comment", commentsAPI.DeleteComment)
	r.handler.RegisterMethod("admin.flag_comment", commentsAPI.FlagComment)
	r.handler.RegisterMethod("admin.list_replies", commentsAPI.ListReplies)
	r.handler.RegisterMethod("admin.list_comment_likes", commentsAPI.ListCommentLikes)

	// Messages and threads
	messagesAPI := admin.NewMessagesAPI(repo, messages, r.cfg)

	r.handler.RegisterMethod("admin.list_messages", messagesAPI.ListMessages)
	r.handler.RegisterMethod("admin.get_message", messagesAPI.GetMessage)
	r.handler.RegisterMethod("admin.mark_messages_read", messagesAPI.MarkRead)
	r.handler.RegisterMethod("admin.mark_messages_spam", messagesAPI.MarkSpam)
	r.handler.RegisterMethod("admin.archive_message", messagesAPI.ArchiveMessage)
	r.handler.RegisterMethod("admin.list_threads", messagesAPI.ListThreads)
	r.handler.RegisterMethod("admin.get_thread", messagesAPI.GetThread)

	// Analytics, read-only
	analyticsAPI := admin.NewAnalyticsAPI(repo, r.cache, r.cfg)

	r.handler.RegisterMethod("admin.list_project_analytics", analyticsAPI.ListProjectAnalytics)
	r.handler.RegisterMethod("admin.list_engagement_metrics", analyticsAPI.ListEngagementMetrics)
	r.handler.RegisterMethod("admin.list_platform_statistics", analyticsAPI.ListPlatformStatistics)
	r.handler.RegisterMethod("admin.latest_platform_statistics", analyticsAPI.LatestPlatformStatistics)
	r.handler.RegisterMethod("admin.list_search_queries", analyticsAPI.ListSearchQueries)
	r.handler.RegisterMethod("admin.list_trending", analyticsAPI.ListTrending)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "ideahub-admin",
	})
}

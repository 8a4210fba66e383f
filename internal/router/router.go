package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/client"
	"blog-api/internal/domain"
	"blog-api/internal/handler"
	"blog-api/internal/metrics"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/service"
	"blog-api/internal/util"
)

const serviceName = "blog-api"

// Config holds router configuration
type Config struct {
	DB           *gorm.DB
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	TokenManager *util.TokenManager
	TokenRepo    repository.TokenRepository
	// S3Client may be nil; thumbnail uploads are then rejected
	S3Client    client.S3ClientInterface
	BasePath    string
	EditWindow  time.Duration
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsHandler := gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	health := healthHandler()
	ready := readyHandler(cfg.DB)

	// Probes and scrapes answer both at the root and under the base path
	r.GET("/metrics", metricsHandler)
	r.GET("/health", health)
	r.GET("/ready", ready)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", health)
		api.GET("/ready", ready)
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	interactionRepo := repository.NewInteractionRepository(cfg.DB)

	// Services
	authService := service.NewAuthService(userRepo, cfg.TokenRepo, cfg.TokenManager, cfg.Logger)
	postService := service.NewPostService(postRepo, cfg.S3Client, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, interactionRepo, postRepo, cfg.EditWindow, cfg.Metrics, cfg.Logger)
	moderationService := service.NewModerationService(commentRepo, interactionRepo, userRepo, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Logger)
	postHandler := handler.NewPostHandler(postService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)
	moderationHandler := handler.NewModerationHandler(moderationService, cfg.Logger)

	auth := middleware.NewAuthenticator(cfg.TokenManager, cfg.TokenRepo, cfg.Logger)
	required := auth.Required()
	optional := auth.Optional()

	limiter := cfg.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(5, 10)
	}
	limit := limiter.Middleware()

	// ============================================================
	// Auth routes
	// ============================================================
	api.POST("/register", limit, authHandler.Register)
	api.POST("/login", limit, authHandler.Login)
	api.POST("/logout", required, authHandler.Logout)
	api.GET("/user", required, authHandler.Me)

	// ============================================================
	// Post routes
	// ============================================================
	posts := api.Group("/posts")
	{
		posts.GET("", optional, postHandler.ListPosts)
		posts.POST("", required, limit, postHandler.CreatePost)
		posts.GET("/:postId", optional, postHandler.GetPost)
		posts.PUT("/:postId", required, limit, postHandler.UpdatePost)
		posts.DELETE("/:postId", required, postHandler.DeletePost)

		// Comments of a post
		posts.GET("/:postId/comments", optional, commentHandler.ListComments)
		posts.POST("/:postId/comments", required, limit, commentHandler.CreateComment)
		posts.GET("/:postId/comments/load-more", optional, commentHandler.LoadMore)
		posts.GET("/:postId/comments/stats", commentHandler.GetStats)
	}

	// ============================================================
	// Comment routes
	// ============================================================
	comments := api.Group("/comments")
	{
		comments.GET("/search", optional, commentHandler.SearchComments)
		comments.GET("/:commentId", optional, commentHandler.GetComment)
		comments.PUT("/:commentId", required, limit, commentHandler.UpdateComment)
		comments.DELETE("/:commentId", required, commentHandler.DeleteComment)
		comments.GET("/:commentId/replies", optional, commentHandler.ListReplies)
		comments.POST("/:commentId/restore", required, commentHandler.RestoreComment)
		comments.POST("/:commentId/like", required, limit, commentHandler.ToggleLike)
		comments.POST("/:commentId/dislike", required, limit, commentHandler.ToggleDislike)
		comments.POST("/:commentId/report", required, limit, commentHandler.ReportComment)
	}

	// ============================================================
	// Current user's content
	// ============================================================
	user := api.Group("/user")
	user.Use(required)
	{
		user.GET("/posts", postHandler.ListUserPosts)
		user.GET("/comments", commentHandler.ListUserComments)
	}

	// ============================================================
	// Moderation routes
	// ============================================================
	moderation := api.Group("/moderation")
	moderation.Use(required, middleware.RequireRole(domain.RoleModerator))
	{
		moderation.GET("/comments", moderationHandler.ListReportedComments)
		moderation.PUT("/reports/:reportId", moderationHandler.UpdateReportStatus)
		moderation.DELETE("/comments/:commentId", moderationHandler.ForceDeleteComment)
	}

	return r
}

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	}
}

func readyHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
	}
}

package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ummahconnect/backend/internal/auth"
	"github.com/ummahconnect/backend/internal/config"
	"github.com/ummahconnect/backend/internal/middleware"
	"github.com/ummahconnect/backend/internal/store"
	"github.com/ummahconnect/backend/pkg/storage"

	announcementHttp "github.com/ummahconnect/backend/internal/modules/announcement/delivery/http"
	announcementRepo "github.com/ummahconnect/backend/internal/modules/announcement/repository"
	announcementService "github.com/ummahconnect/backend/internal/modules/announcement/service"

	attachmentHttp "github.com/ummahconnect/backend/internal/modules/attachment/delivery/http"

	botHttp "github.com/ummahconnect/backend/internal/modules/bot/delivery/http"
	botService "github.com/ummahconnect/backend/internal/modules/bot/service"

	businessHttp "github.com/ummahconnect/backend/internal/modules/business/delivery/http"
	businessRepo "github.com/ummahconnect/backend/internal/modules/business/repository"
	businessService "github.com/ummahconnect/backend/internal/modules/business/service"

	forumHttp "github.com/ummahconnect/backend/internal/modules/forum/delivery/http"
	forumRepo "github.com/ummahconnect/backend/internal/modules/forum/repository"
	forumService "github.com/ummahconnect/backend/internal/modules/forum/service"

	postHttp "github.com/ummahconnect/backend/internal/modules/post/delivery/http"
	postRepo "github.com/ummahconnect/backend/internal/modules/post/repository"
	postService "github.com/ummahconnect/backend/internal/modules/post/service"

	referenceHttp "github.com/ummahconnect/backend/internal/modules/reference/delivery/http"
	referenceService "github.com/ummahconnect/backend/internal/modules/reference/service"

	statHttp "github.com/ummahconnect/backend/internal/modules/stat/delivery/http"
	statService "github.com/ummahconnect/backend/internal/modules/stat/service"

	userHttp "github.com/ummahconnect/backend/internal/modules/user/delivery/http"
	userRepo "github.com/ummahconnect/backend/internal/modules/user/repository"
	userService "github.com/ummahconnect/backend/internal/modules/user/service"
)

// Server wires every module against the shared record store handle. The
// store is injected, never a package-level singleton, so tests can run the
// whole HTTP surface against a throwaway backend.
type Server struct {
	engine *gin.Engine
}

func New(cfg *config.Config, st store.Store, redisClient *redis.Client, imageStorage storage.ImageStorage) *Server {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	users := userRepo.NewUserRepository(st)
	posts := postRepo.NewPostRepository(st)

	userSvc := userService.NewUserService(users, tokens)
	userHandler := userHttp.NewUserHandler(userSvc)

	postSvc := postService.NewPostService(posts, users)
	postHandler := postHttp.NewPostHandler(postSvc)

	announcementSvc := announcementService.NewAnnouncementService(announcementRepo.NewAnnouncementRepository(st))
	announcementHandler := announcementHttp.NewAnnouncementHandler(announcementSvc)

	businessSvc := businessService.NewBusinessService(businessRepo.NewBusinessRepository(st))
	businessHandler := businessHttp.NewBusinessHandler(businessSvc)

	forumSvc := forumService.NewForumService(forumRepo.NewForumRepository(st))
	forumHandler := forumHttp.NewForumHandler(forumSvc)

	statHandler := statHttp.NewStatHandler(statService.NewStatService(users, posts))

	botSvc := botService.NewBotService(st, botService.Options{
		APIKey:  cfg.OpenRouterAPIKey,
		APIURL:  cfg.OpenRouterURL,
		Model:   cfg.OpenRouterModel,
		Timeout: cfg.UpstreamTimeout,
	})
	botHandler := botHttp.NewBotHandler(botSvc)

	referenceSvc := referenceService.NewReferenceService(cfg.AlAdhanBaseURL, cfg.UpstreamTimeout)
	referenceHandler := referenceHttp.NewReferenceHandler(referenceSvc)

	attachmentHandler := attachmentHttp.NewAttachmentHandler(imageStorage, cfg.UploadFolder)

	authMiddleware := middleware.NewAuthMiddleware(users, tokens)
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow)

	engine := gin.Default()
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := engine.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", rateLimiter.Limit("auth"), userHandler.Register)
		authGroup.POST("/login", rateLimiter.Limit("auth"), userHandler.Login)
	}

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", userHandler.Me)

		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.GetByID)
		protected.PUT("/users/me", userHandler.UpdateMe)

		protected.POST("/posts", postHandler.Create)
		protected.GET("/posts", postHandler.List)
		protected.GET("/posts/:id", postHandler.GetByID)
		protected.POST("/posts/:id/comments", postHandler.CreateComment)
		protected.GET("/posts/:id/comments", postHandler.ListComments)

		protected.GET("/announcements", announcementHandler.List)
		protected.POST("/announcements", authMiddleware.RequireAdmin(), announcementHandler.Create)

		protected.GET("/businesses", businessHandler.List)
		protected.POST("/businesses", businessHandler.Create)

		protected.GET("/forum/topics", forumHandler.ListTopics)
		protected.POST("/forum/topics", forumHandler.CreateTopic)

		protected.GET("/dashboard/stats", statHandler.Dashboard)

		protected.POST("/bot/chat", rateLimiter.Limit("bot"), botHandler.Chat)

		protected.POST("/upload", attachmentHandler.Upload)

		islamic := protected.Group("/islamic")
		islamic.GET("/prayer-times", referenceHandler.PrayerTimes)
		islamic.GET("/qibla", referenceHandler.Qibla)
		islamic.GET("/asma-ul-husna", referenceHandler.AsmaUlHusna)
	}

	return &Server{engine: engine}
}

// Engine exposes the router for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

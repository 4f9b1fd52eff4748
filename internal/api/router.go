package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/subnego_go_server/config"
	"github.com/qs3c/subnego_go_server/internal/api/handler"
	"github.com/qs3c/subnego_go_server/internal/api/middleware"
)

type Router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	draftHandler        *handler.DraftHandler
	analysisHandler     *handler.AnalysisHandler
	cfg                 *config.Config
}

func NewRouter(
	userHandler *handler.UserHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	draftHandler *handler.DraftHandler,
	analysisHandler *handler.AnalysisHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		userHandler:         userHandler,
		subscriptionHandler: subscriptionHandler,
		draftHandler:        draftHandler,
		analysisHandler:     analysisHandler,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Logger())
	engine.Use(middleware.CORS(r.cfg.CORS))

	// 用户
	users := engine.Group("/users")
	{
		users.POST("", r.userHandler.Create)
		users.GET("/:user_id", r.userHandler.Get)
		users.POST("/:user_id/subscriptions", r.subscriptionHandler.Create)
		users.GET("/:user_id/subscriptions", r.subscriptionHandler.List)
		users.GET("/:user_id/bundle-suggestion", r.subscriptionHandler.SuggestBundle)
	}

	// 谈判草稿
	engine.POST("/subscriptions/:subscription_id/draft", r.draftHandler.Generate)
	drafts := engine.Group("/drafts")
	{
		drafts.POST("/:draft_id/approve", r.draftHandler.Approve)
		drafts.GET("/:draft_id", r.draftHandler.Get)
	}
	engine.GET("/outcomes/:outcome_id", r.draftHandler.GetOutcome)

	// 使用率分析
	engine.GET("/analysis/low-usage", r.analysisHandler.LowUsage)

	return engine
}

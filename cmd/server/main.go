package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/qs3c/subnego_go_server/config"
	"github.com/qs3c/subnego_go_server/internal/api"
	"github.com/qs3c/subnego_go_server/internal/api/handler"
	"github.com/qs3c/subnego_go_server/internal/service"
	"github.com/qs3c/subnego_go_server/internal/store"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// 配置 zerolog
	setupLogger(&cfg.Log)

	// 初始化 Store（进程内唯一实例，注入各 Service）
	st := store.New()
	log.Info().Msg("In-memory store initialized")

	// 初始化 Service
	userService := service.NewUserService(st)
	subscriptionService := service.NewSubscriptionService(st)
	analysisService := service.NewAnalysisService(st)
	bundleOptimizer := service.NewBundleOptimizer()
	draftService := service.NewDraftService(st)

	// 初始化 Handler
	userHandler := handler.NewUserHandler(userService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, bundleOptimizer)
	draftHandler := handler.NewDraftHandler(draftService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	// 初始化 Router
	router := api.NewRouter(
		userHandler,
		subscriptionHandler,
		draftHandler,
		analysisHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器（状态只在内存中，重启即丢失）
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := engine.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupLogger(cfg *config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskforge/internal/adapter/db"
	httpadapter "taskforge/internal/adapter/http"
	"taskforge/internal/adapter/http/handlers"
	httpmiddleware "taskforge/internal/adapter/http/middleware"
	appservice "taskforge/internal/app/service"
	"taskforge/internal/config"
	"taskforge/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	tokenRepository := dbadapter.NewTokenRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	authService := appservice.NewAuthService(userRepository, tokenRepository, cfg.TokenTTL)
	categoryService := appservice.NewCategoryService(categoryRepository)
	taskService := appservice.NewTaskService(taskRepository, categoryRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(db),
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(),
		handlers.NewCategoryHandler(categoryService),
		handlers.NewTaskHandler(taskService),
		authService,
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

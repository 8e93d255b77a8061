package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cannahub/admin-console/config"
	"github.com/cannahub/admin-console/internal/middleware"
	"github.com/cannahub/admin-console/internal/notify"
	"github.com/cannahub/admin-console/internal/prefs"
	"github.com/cannahub/admin-console/internal/session"
	"github.com/cannahub/admin-console/internal/upstream"
	"github.com/cannahub/admin-console/pkg/i18n"
	"github.com/cannahub/admin-console/pkg/logger"

	acctCtrlPkg "github.com/cannahub/admin-console/internal/accounts/controller"
	acctGWPkg "github.com/cannahub/admin-console/internal/accounts/gateway"
	acctH "github.com/cannahub/admin-console/internal/accounts/handler"

	aiCtrlPkg "github.com/cannahub/admin-console/internal/aimodels/controller"
	aiGWPkg "github.com/cannahub/admin-console/internal/aimodels/gateway"
	aiH "github.com/cannahub/admin-console/internal/aimodels/handler"

	bcCtrlPkg "github.com/cannahub/admin-console/internal/broadcasts/controller"
	bcGWPkg "github.com/cannahub/admin-console/internal/broadcasts/gateway"
	bcH "github.com/cannahub/admin-console/internal/broadcasts/handler"

	invCtrlPkg "github.com/cannahub/admin-console/internal/inventory/controller"
	invGWPkg "github.com/cannahub/admin-console/internal/inventory/gateway"
	invH "github.com/cannahub/admin-console/internal/inventory/handler"

	notifH "github.com/cannahub/admin-console/internal/notify/handler"

	ordCtrlPkg "github.com/cannahub/admin-console/internal/orders/controller"
	ordGWPkg "github.com/cannahub/admin-console/internal/orders/gateway"
	ordH "github.com/cannahub/admin-console/internal/orders/handler"

	prefH "github.com/cannahub/admin-console/internal/prefs/handler"

	prodCtrlPkg "github.com/cannahub/admin-console/internal/products/controller"
	prodGWPkg "github.com/cannahub/admin-console/internal/products/gateway"
	prodH "github.com/cannahub/admin-console/internal/products/handler"

	storeCtrlPkg "github.com/cannahub/admin-console/internal/stores/controller"
	storeGWPkg "github.com/cannahub/admin-console/internal/stores/gateway"
	storeH "github.com/cannahub/admin-console/internal/stores/handler"

	voiceCtrlPkg "github.com/cannahub/admin-console/internal/voice/controller"
	voiceGWPkg "github.com/cannahub/admin-console/internal/voice/gateway"
	voiceH "github.com/cannahub/admin-console/internal/voice/handler"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	i18n.Init()
	for _, lang := range cfg.I18n.Languages {
		path := fmt.Sprintf("%s/active.%s.json", cfg.I18n.LocalesDir, lang)
		if err := i18n.Load(path); err != nil {
			log.Printf("Failed to load %s locales: %v", lang, err)
		}
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 4. Initialize Session, Preferences and the Upstream Gateway
	sessionStore := session.NewStore(redisClient, cfg.Upstream.TokenRealm)
	preferences := prefs.New(redisClient)

	upstreamClient := upstream.NewClient(&upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.RequestTimeout,
	}, sessionStore, appLogger)
	appLogger.Info("Upstream gateway configured", zap.String("base_url", cfg.Upstream.BaseURL))

	// 5. Initialize the Notification Bus
	bus := notify.NewBus(5 * time.Second)

	// 6. Initialize Gateways
	ordGW := ordGWPkg.NewRemoteGateway(upstreamClient)
	bcGW := bcGWPkg.NewRemoteGateway(upstreamClient)
	prodGW := prodGWPkg.NewRemoteGateway(upstreamClient)
	storeGW := storeGWPkg.NewRemoteGateway(upstreamClient)
	invGW := invGWPkg.NewRemoteGateway(upstreamClient)
	acctGW := acctGWPkg.NewRemoteGateway(upstreamClient)
	aiGW := aiGWPkg.NewRemoteGateway(upstreamClient, appLogger)
	voiceGW := voiceGWPkg.NewRemoteGateway(upstreamClient, appLogger)

	// 7. Initialize Controllers
	ordCtrl := ordCtrlPkg.NewOrderController(ordGW, bus, appLogger)
	bcCtrl := bcCtrlPkg.NewBroadcastController(bcGW, bus, appLogger, cfg.Poll.BroadcastInterval)
	prodCtrl := prodCtrlPkg.NewProductController(prodGW, bus, appLogger)
	storeCtrl := storeCtrlPkg.NewStoreController(storeGW, bus, appLogger)
	invCtrl := invCtrlPkg.NewInventoryController(invGW, bus, appLogger)
	acctCtrl := acctCtrlPkg.NewAccountController(acctGW, bus, appLogger)
	aiCtrl := aiCtrlPkg.NewAIController(aiGW, bus, appLogger, cfg.Poll.ModelStatusInterval)
	voiceCtrl := voiceCtrlPkg.NewVoiceController(voiceGW, bus, appLogger)

	// 7.5 Start Pollers
	pollCtx, cancelPolling := context.WithCancel(context.Background())
	defer cancelPolling()
	aiCtrl.StartPolling(pollCtx)
	bcCtrl.StartPolling(pollCtx)

	// 8. Initialize HTTP Server
	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())

	admin := engine.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWT.SecretKey))
	admin.Use(middleware.StoreScopeMiddleware())

	ordH.NewOrderHandler(ordCtrl, appLogger).Register(admin)
	bcH.NewBroadcastHandler(bcCtrl, appLogger).Register(admin)
	prodH.NewProductHandler(prodCtrl, appLogger).Register(admin)
	storeH.NewStoreHandler(storeCtrl, appLogger).Register(admin)
	invH.NewInventoryHandler(invCtrl, appLogger).Register(admin)
	acctH.NewAccountHandler(acctCtrl, appLogger).Register(admin)
	aiH.NewAIModelHandler(aiCtrl, appLogger).Register(admin)
	voiceH.NewVoiceHandler(voiceCtrl, appLogger).Register(admin)
	notifH.NewNotificationHandler(bus).Register(admin)
	prefH.NewPreferenceHandler(preferences, appLogger).Register(admin)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	server := &http.Server{
		Addr:    port,
		Handler: engine,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	aiCtrl.StopPolling()
	bcCtrl.StopPolling()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

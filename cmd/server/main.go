package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fractionax/marketplace/internal/chain"
	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/database"
	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/purchase"
	"github.com/fractionax/marketplace/internal/router"
	"github.com/fractionax/marketplace/internal/scheduler"
	"github.com/fractionax/marketplace/internal/wallet"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
)

func main() {
	// 加载配置
	cfg := config.Load()

	if err := logger.Init(cfg.Log); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化链客户端
	chainManager, err := chain.NewManager(ctx, cfg.Chain)
	if err != nil {
		logger.Fatal("Failed to initialize chain manager: %v", err)
	}
	defer chainManager.Close()

	pool, err := chainManager.Pool(cfg.Pool.Contract)
	if err != nil {
		logger.Fatal("Failed to bind funding pool: %v", err)
	}

	conn, err := wallet.FromConfig(cfg.Wallet, cfg.Chain.ChainId)
	if err != nil {
		logger.Fatal("Failed to load wallet: %v", err)
	}
	if !conn.Account().Connected {
		logger.Warn("No wallet configured, purchases will be refused")
	}

	valueRate, err := decimal.NewFromString(cfg.Pool.ValueRate)
	if err != nil {
		logger.Fatal("Invalid pool.value_rate %q: %v", cfg.Pool.ValueRate, err)
	}

	readWorkers, err := ants.NewPool(cfg.Pool.Workers)
	if err != nil {
		logger.Fatal("Failed to create read worker pool: %v", err)
	}
	defer readWorkers.Release()

	submitWorkers, err := ants.NewPool(cfg.Pool.Workers)
	if err != nil {
		logger.Fatal("Failed to create submit worker pool: %v", err)
	}
	defer submitWorkers.Release()

	reader := funding.NewReader(pool, readWorkers)
	purchases := logic.NewPurchaseLogic(db)
	service := purchase.NewService(pool, conn, logic.NewUserLogic(db), purchases, submitWorkers, purchase.Options{
		Decimals:  cfg.Pool.Decimals,
		ValueRate: valueRate,
	})

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	limiter := router.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	r := router.Setup(router.Deps{
		DB:        db,
		Config:    cfg,
		Reader:    reader,
		Purchases: service,
		Chain:     chainManager,
		Limiter:   limiter,
	})

	// 启动定时任务
	tasks, err := scheduler.NewManager(
		scheduler.NewPurchaseReceiptJob(purchases, chainManager.Receipts(),
			time.Duration(cfg.Task.Interval)*time.Second, cfg.Task.BatchSize),
		scheduler.NewDialogSweepJob(service, time.Duration(cfg.Task.DialogTTL)*time.Minute),
		scheduler.NewLimiterCleanupJob(limiter, time.Duration(cfg.RateLimit.Idle)*time.Minute),
	)
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}
	tasks.Start()
	defer tasks.Stop()

	// 启动服务器
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}
	go func() {
		logger.Info("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}

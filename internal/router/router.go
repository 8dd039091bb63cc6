package router

import (
	"net/http"

	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/handler"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/metrics"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps 路由依赖; Reader, Purchases, Chain 可以为空, 对应端点不注册
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Reader    *funding.Reader
	Purchases *purchase.Service
	Chain     handler.ChainStatus
	Limiter   *RateLimiter // 为空时按 rate_limit 配置新建
}

func Setup(deps Deps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// 中间件
	r.Use(requestLogger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.Site.BaseURL))
	r.Use(metricsMiddleware())

	limiter := deps.Limiter
	if limiter == nil {
		limiter = NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	site := handler.NewSiteHandler(deps.DB, deps.Chain, cfg)
	r.GET("/health", site.Health)
	r.GET("/sitemap.xml", site.Sitemap)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	investments := logic.NewRecordLogic[model.InvestmentModel](deps.DB)
	users := logic.NewUserLogic(deps.DB)

	api := r.Group("/api")
	{
		api.GET("/config/public", site.PublicConfig)

		store := handler.NewStoreHandlers(deps.DB)
		api.GET("/investments", store.Investments.List)
		api.POST("/investments", limiter.Handler(), store.Investments.Create)
		api.GET("/users", store.Users.List)
		api.POST("/users", limiter.Handler(), store.Users.Create)
		api.GET("/interest", store.Interests.List)
		api.POST("/interest", limiter.Handler(), store.Interests.Create)
		api.GET("/newsletter", store.Newsletter.List)
		api.POST("/newsletter", limiter.Handler(), store.Newsletter.Create)
		api.GET("/waitlist", store.Waitlist.List)
		api.POST("/waitlist", limiter.Handler(), store.Waitlist.Create)

		listings := handler.NewListingHandler(investments, users, deps.Reader, deps.Purchases, cfg.Pool)
		api.GET("/marketplace", listings.GetMarketplace)
		api.GET("/listing/:id", listings.GetListing)

		if deps.Reader != nil {
			pool := handler.NewPoolHandler(deps.Reader, cfg.Pool)
			api.GET("/pool", pool.GetPool)
		}

		if deps.Purchases != nil {
			ph := handler.NewPurchaseHandler(deps.Purchases, investments, logic.NewPurchaseLogic(deps.DB), cfg.Pool.Decimals)
			purchases := api.Group("/purchases")
			{
				purchases.POST("", limiter.Handler(), ph.OpenPurchase)
				purchases.GET("/:id", ph.GetPurchase)
				purchases.POST("/:id/submit", limiter.Handler(), ph.SubmitPurchase)
				purchases.DELETE("/:id", ph.ClosePurchase)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		handler.ErrorResponse(c, http.StatusNotFound, "Not found")
	})

	return r
}

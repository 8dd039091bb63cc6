package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/database"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/sitemap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ChainStatus 链连接状态
type ChainStatus interface {
	GetHealthStatus(ctx context.Context) map[string]interface{}
}

// SiteHandler 站点级端点: sitemap, 健康检查, 前端公开配置
type SiteHandler struct {
	db          *gorm.DB
	chain       ChainStatus
	investments *logic.RecordLogic[model.InvestmentModel]
	cfg         *config.Config
}

// NewSiteHandler 创建站点处理器; chain 可以为空
func NewSiteHandler(db *gorm.DB, chain ChainStatus, cfg *config.Config) *SiteHandler {
	return &SiteHandler{
		db:          db,
		chain:       chain,
		investments: logic.NewRecordLogic[model.InvestmentModel](db),
		cfg:         cfg,
	}
}

// Sitemap 静态路由加每个投资的详情页
func (h *SiteHandler) Sitemap(c *gin.Context) {
	routes := append([]string{}, h.cfg.Site.Routes...)

	rows, err := h.investments.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list investments for sitemap: %v", err)
	}
	for _, inv := range rows {
		routes = append(routes, sitemap.ListingRoute(inv.Id))
	}

	body, err := sitemap.Marshal(sitemap.Build(h.cfg.Site.BaseURL, routes, time.Now()))
	if err != nil {
		logger.Error("Failed to render sitemap: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Health 数据库与链连接状态
func (h *SiteHandler) Health(c *gin.Context) {
	status := http.StatusOK
	result := gin.H{
		"status":  "ok",
		"service": "fractionax-marketplace",
	}

	if err := database.Ping(h.db); err != nil {
		logger.Error("Health check database ping failed: %v", err)
		status = http.StatusServiceUnavailable
		result["status"] = "degraded"
		result["database"] = "unreachable"
	} else {
		result["database"] = "ok"
	}

	if h.chain != nil {
		chainStatus := h.chain.GetHealthStatus(c.Request.Context())
		result["chain"] = chainStatus
		if s, _ := chainStatus["client_status"].(string); s != "connected" {
			status = http.StatusServiceUnavailable
			result["status"] = "degraded"
		}
	}

	c.JSON(status, result)
}

// PublicConfig 前端需要的公开配置
func (h *SiteHandler) PublicConfig(c *gin.Context) {
	pool := ""
	if contract, ok := h.cfg.Chain.Contracts[h.cfg.Pool.Contract]; ok {
		pool = contract.Address
	}
	Respond(c, http.StatusOK, "Successful in fetching config", gin.H{
		"analyticsId": h.cfg.Site.AnalyticsID,
		"projectId":   h.cfg.Site.ProjectID,
		"chainId":     h.cfg.Chain.ChainId,
		"pool":        pool,
		"symbol":      h.cfg.Pool.Symbol,
		"decimals":    h.cfg.Pool.Decimals,
	})
}

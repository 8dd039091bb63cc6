package handler

import (
	"net/http"
	"strconv"

	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/listing"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/marketplace"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
	"github.com/gin-gonic/gin"
)

// ListingHandler 市场列表与投资详情
type ListingHandler struct {
	investments *logic.RecordLogic[model.InvestmentModel]
	users       *logic.UserLogic
	reader      *funding.Reader
	purchases   *purchase.Service
	pool        config.PoolConfig
}

// NewListingHandler 创建列表处理器; reader 和 purchases 可以为空
func NewListingHandler(investments *logic.RecordLogic[model.InvestmentModel], users *logic.UserLogic, reader *funding.Reader, purchases *purchase.Service, pool config.PoolConfig) *ListingHandler {
	return &ListingHandler{
		investments: investments,
		users:       users,
		reader:      reader,
		purchases:   purchases,
		pool:        pool,
	}
}

// MarketplaceResponse 一页列表
type MarketplaceResponse struct {
	View           marketplace.ViewMode                    `json:"view"`
	Status         marketplace.StatusFilter                `json:"status"`
	Voting         marketplace.VotingFilter                `json:"voting"`
	Search         string                                  `json:"search"`
	FiltersApplied bool                                    `json:"filtersApplied"`
	Page           marketplace.Page[model.InvestmentModel] `json:"page"`
}

// GetMarketplace 全量获取后在内存中分页
func (h *ListingHandler) GetMarketplace(c *gin.Context) {
	view, err := marketplace.ParseViewMode(c.Query("view"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	status, err := marketplace.ParseStatusFilter(c.Query("status"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	voting, err := marketplace.ParseVotingFilter(c.Query("voting"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid page")
		return
	}

	rows, err := h.investments.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch marketplace: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch investments")
		return
	}

	l := marketplace.NewListing(rows)
	l.SetView(view)
	l.SetStatus(status)
	l.SetVoting(voting)
	l.SetSearch(c.Query("search"))
	l.SetPage(page)

	Respond(c, http.StatusOK, "Successful in fetching investments", MarketplaceResponse{
		View:           l.View(),
		Status:         l.Status(),
		Voting:         l.Voting(),
		Search:         l.Search(),
		FiltersApplied: l.FiltersApplied(),
		Page:           l.CurrentItems(),
	})
}

// GetListing 投资详情; ?user= 决定展示购买还是意向登记, ?dialog= 带出购买状态
func (h *ListingHandler) GetListing(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid investment id")
		return
	}
	rows, err := h.investments.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to fetch investment %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch investments")
		return
	}
	if len(rows) == 0 {
		ErrorResponse(c, http.StatusNotFound, "Investment not found")
		return
	}

	in := listing.Input{Investment: &rows[0], Decimals: h.pool.Decimals}

	if userParam := c.Query("user"); userParam != "" {
		userId, err := strconv.ParseInt(userParam, 10, 64)
		if err != nil {
			ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
			return
		}
		if in.Approved, err = h.users.IsApproved(ctx, userId, id); err != nil {
			logger.Error("Failed to check approval of user %d: %v", userId, err)
			ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch investments")
			return
		}
	}

	if dialogId := c.Query("dialog"); dialogId != "" && h.purchases != nil {
		if d, err := h.purchases.Dialog(dialogId); err == nil && d.InvestmentID() == id {
			state := d.State()
			in.Purchase = &state
		}
	}

	if h.reader != nil {
		state := funding.NewState()
		_ = h.reader.Refresh(ctx, state)
		view := funding.NewView(state.Snapshot(), h.pool.Decimals, h.pool.Symbol)
		in.Pool = &view
	}

	detail, err := listing.Build(in)
	if err != nil {
		logger.Error("Failed to build listing %d: %v", id, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch investments")
		return
	}
	Respond(c, http.StatusOK, "Successful in fetching investment", detail)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/listing"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PurchaseHandler 购买对话框
type PurchaseHandler struct {
	service     *purchase.Service
	investments *logic.RecordLogic[model.InvestmentModel]
	purchases   *logic.PurchaseLogic
	decimals    int32
}

// NewPurchaseHandler 创建购买处理器
func NewPurchaseHandler(service *purchase.Service, investments *logic.RecordLogic[model.InvestmentModel], purchases *logic.PurchaseLogic, decimals int32) *PurchaseHandler {
	return &PurchaseHandler{
		service:     service,
		investments: investments,
		purchases:   purchases,
		decimals:    decimals,
	}
}

// OpenPurchase 为获批用户打开购买对话框
func (h *PurchaseHandler) OpenPurchase(c *gin.Context) {
	var req OpenPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid purchase request")
		return
	}

	d, err := h.service.Open(c.Request.Context(), req.UserId, req.InvestmentId)
	if err != nil {
		if errors.Is(err, purchase.ErrNotApproved) {
			Respond(c, http.StatusForbidden, "User is not approved for this investment", listing.CopyFor(false, purchase.Idle()))
			return
		}
		logger.Error("Failed to open purchase dialog: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to open purchase")
		return
	}

	Respond(c, http.StatusCreated, "Successful in opening purchase", newPurchaseResponse(d))
}

// SubmitPurchase 提交金额, 交易在后台签名发送
func (h *PurchaseHandler) SubmitPurchase(c *gin.Context) {
	var req SubmitPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid purchase amount")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid purchase amount")
		return
	}

	d, err := h.service.Dialog(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "Purchase not found")
		return
	}

	if amount.IsPositive() {
		if status, msg := h.checkBounds(c, d.InvestmentID(), amount); status != 0 {
			ErrorResponse(c, status, msg)
			return
		}
	}

	if _, err := h.service.Submit(c.Request.Context(), d.ID(), amount); err != nil {
		status, msg := submitError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to submit purchase %s: %v", d.ID(), err)
		}
		ErrorResponse(c, status, msg)
		return
	}

	Respond(c, http.StatusAccepted, "Purchase submitted", newPurchaseResponse(d))
}

// GetPurchase 对话框当前状态与提交记录
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	d, err := h.service.Dialog(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "Purchase not found")
		return
	}

	resp := newPurchaseResponse(d)
	records, err := h.purchases.ListByDialog(c.Request.Context(), d.ID())
	if err != nil {
		logger.Error("Failed to list submissions of %s: %v", d.ID(), err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch purchase")
		return
	}
	resp.Submissions = records
	Respond(c, http.StatusOK, "Successful in fetching purchase", resp)
}

// ClosePurchase 关闭对话框
func (h *PurchaseHandler) ClosePurchase(c *gin.Context) {
	if err := h.service.Close(c.Param("id")); err != nil {
		ErrorResponse(c, http.StatusNotFound, "Purchase not found")
		return
	}
	Respond(c, http.StatusOK, "Purchase closed", nil)
}

func (h *PurchaseHandler) checkBounds(c *gin.Context, investmentId int64, amount decimal.Decimal) (int, string) {
	rows, err := h.investments.FindByID(c.Request.Context(), investmentId)
	if err != nil {
		logger.Error("Failed to load investment %d: %v", investmentId, err)
		return http.StatusInternalServerError, "Failed to submit purchase"
	}
	if len(rows) == 0 {
		return http.StatusNotFound, "Investment not found"
	}

	bounds, err := listing.ParseBounds(rows[0].Minimum, rows[0].Maximum, h.decimals)
	if err != nil {
		logger.Error("Investment %d has invalid bounds: %v", investmentId, err)
		return http.StatusInternalServerError, "Failed to submit purchase"
	}
	wei, err := funding.ToSmallestUnit(amount, h.decimals)
	if err != nil {
		return http.StatusBadRequest, "Invalid purchase amount"
	}
	if err := bounds.Check(wei); err != nil {
		return http.StatusBadRequest, "Amount is outside the investment limits"
	}
	return 0, ""
}

func submitError(err error) (int, string) {
	switch {
	case errors.Is(err, purchase.ErrDialogNotFound):
		return http.StatusNotFound, "Purchase not found"
	case errors.Is(err, purchase.ErrAmountNotPositive):
		return http.StatusBadRequest, "Amount must be greater than zero"
	case errors.Is(err, funding.ErrTooPrecise):
		return http.StatusBadRequest, "Invalid purchase amount"
	case errors.Is(err, purchase.ErrSubmissionPending):
		return http.StatusConflict, "A purchase is already pending"
	case errors.Is(err, purchase.ErrWalletNotConnected):
		return http.StatusConflict, "Wallet not connected"
	default:
		return http.StatusInternalServerError, "Failed to submit purchase"
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/gin-gonic/gin"
)

// RecordMessages 一个实体的固定响应文案
type RecordMessages struct {
	Fetched      string
	NotFound     string
	FetchFailed  string
	Created      string
	CreateFailed string
}

// RecordHandler 单表的 GET/POST 端点, T 为模型, R 为请求体
type RecordHandler[T any, R any] struct {
	name     string
	logic    *logic.RecordLogic[T]
	messages RecordMessages
	byID     bool
	toModel  func(R) T
}

// NewRecordHandler 创建端点; byID 为 true 时 GET 支持 ?id=
func NewRecordHandler[T any, R any](name string, recordLogic *logic.RecordLogic[T], messages RecordMessages, byID bool, toModel func(R) T) *RecordHandler[T, R] {
	return &RecordHandler[T, R]{
		name:     name,
		logic:    recordLogic,
		messages: messages,
		byID:     byID,
		toModel:  toModel,
	}
}

// List 获取全部记录, 或按 id 获取; id 不存在时返回 200 和空数组
func (h *RecordHandler[T, R]) List(c *gin.Context) {
	ctx := c.Request.Context()

	if idParam := c.Query("id"); h.byID && idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			logger.Warn("Invalid %s id %q: %v", h.name, idParam, err)
			ErrorResponse(c, http.StatusInternalServerError, h.messages.FetchFailed)
			return
		}

		rows, err := h.logic.FindByID(ctx, id)
		if err != nil {
			logger.Error("Failed to fetch %s %d: %v", h.name, id, err)
			ErrorResponse(c, http.StatusInternalServerError, h.messages.FetchFailed)
			return
		}
		if len(rows) == 0 {
			Respond(c, http.StatusOK, h.messages.NotFound, rows)
			return
		}
		Respond(c, http.StatusOK, h.messages.Fetched, rows)
		return
	}

	rows, err := h.logic.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch %s: %v", h.name, err)
		ErrorResponse(c, http.StatusInternalServerError, h.messages.FetchFailed)
		return
	}
	Respond(c, http.StatusOK, h.messages.Fetched, rows)
}

// Create 插入一条记录并返回
func (h *RecordHandler[T, R]) Create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid %s body: %v", h.name, err)
		ErrorResponse(c, http.StatusInternalServerError, h.messages.CreateFailed)
		return
	}

	record := h.toModel(req)
	if err := h.logic.Create(c.Request.Context(), &record); err != nil {
		logger.Error("Failed to create %s: %v", h.name, err)
		ErrorResponse(c, http.StatusInternalServerError, h.messages.CreateFailed)
		return
	}
	Respond(c, http.StatusCreated, h.messages.Created, record)
}

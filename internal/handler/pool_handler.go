package handler

import (
	"net/http"

	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/funding"
	"github.com/gin-gonic/gin"
)

// PoolHandler 资金池进度
type PoolHandler struct {
	reader *funding.Reader
	pool   config.PoolConfig
}

// NewPoolHandler 创建资金池处理器
func NewPoolHandler(reader *funding.Reader, pool config.PoolConfig) *PoolHandler {
	return &PoolHandler{reader: reader, pool: pool}
}

// GetPool 每次请求重新读取合约; 读取失败的字段保持初始值
func (h *PoolHandler) GetPool(c *gin.Context) {
	view := h.load(c)
	Respond(c, http.StatusOK, "Successful in fetching pool", view)
}

func (h *PoolHandler) load(c *gin.Context) funding.View {
	state := funding.NewState()
	// 失败已在 Refresh 中逐项记录
	_ = h.reader.Refresh(c.Request.Context(), state)
	return funding.NewView(state.Snapshot(), h.pool.Decimals, h.pool.Symbol)
}

// Package registrar 为尚未获批的用户登记购买意向.
package registrar

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fractionax/marketplace/internal/logger"
	"github.com/go-resty/resty/v2"
)

const interestPath = "/api/interest"

// Ack 提交后给用户的反馈
type Ack struct {
	OK      bool
	Message string
}

// Client 意向登记客户端
type Client struct {
	baseURL    string
	httpClient *resty.Client
}

// NewClient 创建客户端
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWith(baseURL, resty.New().SetTimeout(timeout))
}

// NewClientWith 使用给定的 resty 客户端
func NewClientWith(baseURL string, httpClient *resty.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Submit 提交表单, 总是返回一个反馈
func (c *Client) Submit(ctx context.Context, form Form) Ack {
	if err := form.Err(); err != nil {
		logger.Debug("Interest form rejected: %v", err)
		return Ack{Message: "Please enter a valid email and EVM wallet address."}
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		Post(c.baseURL + interestPath)
	if err != nil {
		logger.Error("Failed to submit interest for %s: %v", form.EVMWallet, err)
		return failure()
	}
	if resp.StatusCode() != http.StatusCreated {
		logger.Warn("Interest submission for %s returned status %d", form.EVMWallet, resp.StatusCode())
		return failure()
	}

	return Ack{
		OK:      true,
		Message: fmt.Sprintf("Interest submitted to use %s for this investment.", form.EVMWallet),
	}
}

func failure() Ack {
	return Ack{Message: "Interest could not be submitted, please try again."}
}

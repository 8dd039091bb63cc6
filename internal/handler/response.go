package handler

import (
	"github.com/gin-gonic/gin"
)

// Envelope 统一响应结构 {status, data:{msg, result}}
type Envelope struct {
	Status int          `json:"status"`
	Data   EnvelopeData `json:"data"`
}

// EnvelopeData 响应数据, 失败时 result 省略
type EnvelopeData struct {
	Msg    string      `json:"msg"`
	Result interface{} `json:"result,omitempty"`
}

// Respond 写出响应, HTTP 状态码与 status 一致
func Respond(c *gin.Context, statusCode int, msg string, result interface{}) {
	c.JSON(statusCode, Envelope{
		Status: statusCode,
		Data: EnvelopeData{
			Msg:    msg,
			Result: result,
		},
	})
}

// ErrorResponse 错误响应, 不带 result
func ErrorResponse(c *gin.Context, statusCode int, msg string) {
	Respond(c, statusCode, msg, nil)
}

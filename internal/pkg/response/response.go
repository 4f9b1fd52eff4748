package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 本服务对外的响应约定：成功直接返回实体 JSON，
// 失败返回 {"detail": "..."} 加对应状态码。

// Detail 错误响应体
type Detail struct {
	Detail string `json:"detail"`
}

// Success 200 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 无内容（如无可给出的建议）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, Detail{Detail: detail})
}

// ParamError 400 参数错误
func ParamError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "invalid request"
	}
	c.JSON(http.StatusBadRequest, Detail{Detail: detail})
}

// ServerError 500 服务器内部错误
func ServerError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, Detail{Detail: detail})
}

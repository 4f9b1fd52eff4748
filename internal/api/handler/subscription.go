package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/subnego_go_server/internal/model/dto"
	"github.com/qs3c/subnego_go_server/internal/pkg/response"
	"github.com/qs3c/subnego_go_server/internal/service"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
	bundleOptimizer     *service.BundleOptimizer
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService, bundleOptimizer *service.BundleOptimizer) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		bundleOptimizer:     bundleOptimizer,
	}
}

// Create 给用户创建订阅
// POST /users/:user_id/subscriptions
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	sub, err := h.subscriptionService.Create(c.Param("user_id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Created(c, sub)
}

// List 列出用户的订阅，未知用户返回空数组
// GET /users/:user_id/subscriptions
func (h *SubscriptionHandler) List(c *gin.Context) {
	subs := h.subscriptionService.ListByUser(c.Param("user_id"))
	response.Success(c, subs)
}

// SuggestBundle 对用户的订阅给出打包建议，不足两个订阅返回 204
// GET /users/:user_id/bundle-suggestion
func (h *SubscriptionHandler) SuggestBundle(c *gin.Context) {
	subs := h.subscriptionService.ListByUser(c.Param("user_id"))

	suggestion := h.bundleOptimizer.SuggestBundle(subs)
	if suggestion == nil {
		response.NoContent(c)
		return
	}

	response.Success(c, suggestion)
}

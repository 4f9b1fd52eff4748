package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/subnego_go_server/internal/pkg/response"
	"github.com/qs3c/subnego_go_server/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create 创建用户档案
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	user := h.userService.Create()
	response.Created(c, user)
}

// Get 查询用户档案
// GET /users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, user)
}

package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/subnego_go_server/internal/model/dto"
	"github.com/qs3c/subnego_go_server/internal/pkg/response"
	"github.com/qs3c/subnego_go_server/internal/service"
)

type DraftHandler struct {
	draftService *service.DraftService
}

func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
	}
}

// Generate 基于订阅生成谈判草稿
// POST /subscriptions/:subscription_id/draft
func (h *DraftHandler) Generate(c *gin.Context) {
	// body 可为空，tone 缺省 neutral
	var req dto.GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ParamError(c, err.Error())
		return
	}
	if req.Tone == "" {
		req.Tone = "neutral"
	}

	draft, err := h.draftService.GenerateDraft(c.Param("subscription_id"), req.Tone)
	if err != nil {
		if errors.Is(err, service.ErrSubscriptionNotFound) {
			response.NotFound(c, "subscription not found")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Created(c, dto.DraftCreatedResponse{DraftID: draft.ID})
}

// Approve 批准草稿并发送，返回模拟的谈判结果
// POST /drafts/:draft_id/approve
func (h *DraftHandler) Approve(c *gin.Context) {
	outcome, err := h.draftService.ApproveAndSend(c.Param("draft_id"))
	if err != nil {
		if errors.Is(err, service.ErrDraftNotFound) {
			response.NotFound(c, "draft not found")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, dto.ApproveDraftResponse{
		OutcomeID: outcome.ID,
		Result:    outcome.Result,
	})
}

// Get 查询草稿
// GET /drafts/:draft_id
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.draftService.GetDraft(c.Param("draft_id"))
	if err != nil {
		response.NotFound(c, "draft not found")
		return
	}

	response.Success(c, draft)
}

// GetOutcome 查询谈判结果
// GET /outcomes/:outcome_id
func (h *DraftHandler) GetOutcome(c *gin.Context) {
	outcome, err := h.draftService.GetOutcome(c.Param("outcome_id"))
	if err != nil {
		response.NotFound(c, "outcome not found")
		return
	}

	response.Success(c, outcome)
}

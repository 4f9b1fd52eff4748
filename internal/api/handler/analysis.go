package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/subnego_go_server/internal/model/dto"
	"github.com/qs3c/subnego_go_server/internal/pkg/response"
	"github.com/qs3c/subnego_go_server/internal/service"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// LowUsage 筛选低使用率订阅
// GET /analysis/low-usage?threshold_days=60
func (h *AnalysisHandler) LowUsage(c *gin.Context) {
	var req dto.LowUsageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	flagged := h.analysisService.FlagLowUsage(req.ThresholdDays)
	response.Success(c, flagged)
}

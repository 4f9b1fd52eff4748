package service

import (
	"github.com/qs3c/subnego_go_server/internal/model"
	"github.com/qs3c/subnego_go_server/internal/store"
)

// DefaultLowUsageThresholdDays 默认低使用率阈值（天）
const DefaultLowUsageThresholdDays = 60

type AnalysisService struct {
	store *store.Store
}

func NewAnalysisService(st *store.Store) *AnalysisService {
	return &AnalysisService{store: st}
}

// FlagLowUsage 筛选 last_active_days >= thresholdDays 的订阅。
// 订阅没有该指标时按 0 处理。纯过滤，无副作用。
func (s *AnalysisService) FlagLowUsage(thresholdDays int) []*model.Subscription {
	flagged := make([]*model.Subscription, 0)
	for _, sub := range s.store.Subscriptions() {
		lastActive := sub.UsageMetrics["last_active_days"]
		if lastActive >= float64(thresholdDays) {
			flagged = append(flagged, sub)
		}
	}
	return flagged
}

package service

import (
	"github.com/qs3c/subnego_go_server/internal/model"
)

// 打包建议的固定启发式参数
const (
	bundleSavingsRate     = 0.15
	bundleConfidenceScore = 0.6
	bundleTradeoffs       = "Reduced per-account features"
)

type BundleOptimizer struct{}

func NewBundleOptimizer() *BundleOptimizer {
	return &BundleOptimizer{}
}

// SuggestBundle 对至少两个订阅给出合并建议，估算节省为总花费的 15%。
// 不足两个返回 nil（表示无建议，不是错误）。结果不入库。
func (o *BundleOptimizer) SuggestBundle(subscriptions []*model.Subscription) *model.BundleSuggestion {
	if len(subscriptions) < 2 {
		return nil
	}

	ids := make([]string, 0, len(subscriptions))
	total := 0.0
	for _, sub := range subscriptions {
		ids = append(ids, sub.ID)
		total += sub.Cost
	}

	return model.NewBundleSuggestion(ids, total*bundleSavingsRate, bundleTradeoffs, bundleConfidenceScore)
}

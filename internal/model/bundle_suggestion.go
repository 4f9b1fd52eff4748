package model

import (
	"github.com/google/uuid"
)

// BundleSuggestion 合并订阅的建议，只返回给调用方，不入库
type BundleSuggestion struct {
	ID                    string   `json:"id"`
	InvolvedSubscriptions []string `json:"involved_subscriptions"`
	EstimatedSavings      float64  `json:"estimated_savings"`
	Tradeoffs             string   `json:"tradeoffs"`
	ConfidenceScore       float64  `json:"confidence_score"`
}

func NewBundleSuggestion(subscriptionIDs []string, savings float64, tradeoffs string, confidence float64) *BundleSuggestion {
	return &BundleSuggestion{
		ID:                    uuid.NewString(),
		InvolvedSubscriptions: subscriptionIDs,
		EstimatedSavings:      savings,
		Tradeoffs:             tradeoffs,
		ConfidenceScore:       confidence,
	}
}

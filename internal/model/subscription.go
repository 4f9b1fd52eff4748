package model

import (
	"github.com/google/uuid"
)

type Subscription struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	ProviderName  string             `json:"provider_name"`
	Plan          string             `json:"plan"`
	Cost          float64            `json:"cost"`
	BillingCycle  string             `json:"billing_cycle"` // monthly, yearly
	LinkedAccount string             `json:"linked_account"`
	UsageMetrics  map[string]float64 `json:"usage_metrics"`
}

// NewSubscription 创建订阅，billingCycle 为空时默认 monthly
func NewSubscription(userID, providerName, plan string, cost float64, billingCycle string) *Subscription {
	if billingCycle == "" {
		billingCycle = "monthly"
	}
	return &Subscription{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProviderName: providerName,
		Plan:         plan,
		Cost:         cost,
		BillingCycle: billingCycle,
		UsageMetrics: make(map[string]float64),
	}
}

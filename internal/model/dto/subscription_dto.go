package dto

// CreateSubscriptionRequest 创建订阅请求
type CreateSubscriptionRequest struct {
	ProviderName string  `json:"provider_name" binding:"required"`
	Plan         string  `json:"plan" binding:"required"`
	Cost         float64 `json:"cost" binding:"required"`
	BillingCycle string  `json:"billing_cycle"` // 默认 monthly
}

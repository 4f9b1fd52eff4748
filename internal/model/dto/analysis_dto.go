package dto

// LowUsageRequest 低使用率筛选参数
type LowUsageRequest struct {
	ThresholdDays int `form:"threshold_days,default=60"`
}

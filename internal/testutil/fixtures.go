package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/qs3c/subnego_go_server/internal/model"
	"github.com/qs3c/subnego_go_server/internal/store"
)

// TestUser 创建测试用户并入库
func TestUser(t *testing.T, st *store.Store, opts ...func(*model.UserProfile)) *model.UserProfile {
	t.Helper()

	user := model.NewUserProfile()

	for _, opt := range opts {
		opt(user)
	}

	st.PutUser(user)
	return user
}

// WithConsent 设置同意状态
func WithConsent(status string) func(*model.UserProfile) {
	return func(u *model.UserProfile) {
		u.ConsentStatus = status
	}
}

// WithLinkedAccounts 设置关联账户
func WithLinkedAccounts(accounts ...string) func(*model.UserProfile) {
	return func(u *model.UserProfile) {
		u.LinkedAccounts = accounts
	}
}

// TestSubscription 创建测试订阅并入库
func TestSubscription(t *testing.T, st *store.Store, userID string, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	sub := model.NewSubscription(
		userID,
		fmt.Sprintf("provider_%d", time.Now().UnixNano()%10000),
		"basic",
		9.99,
		"monthly",
	)

	for _, opt := range opts {
		opt(sub)
	}

	st.PutSubscription(sub)
	return sub
}

// WithProvider 设置供应商名称
func WithProvider(name string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.ProviderName = name
	}
}

// WithPlan 设置套餐
func WithPlan(plan string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Plan = plan
	}
}

// WithCost 设置费用
func WithCost(cost float64) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Cost = cost
	}
}

// WithLastActiveDays 设置最近活跃天数指标
func WithLastActiveDays(days float64) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.UsageMetrics["last_active_days"] = days
	}
}

package service

import (
	"github.com/qs3c/subnego_go_server/internal/model"
	"github.com/qs3c/subnego_go_server/internal/model/dto"
	"github.com/qs3c/subnego_go_server/internal/store"
)

type SubscriptionService struct {
	store *store.Store
}

func NewSubscriptionService(st *store.Store) *SubscriptionService {
	return &SubscriptionService{store: st}
}

// Create 给指定用户创建订阅；用户不存在返回 ErrUserNotFound
func (s *SubscriptionService) Create(userID string, req *dto.CreateSubscriptionRequest) (*model.Subscription, error) {
	if _, ok := s.store.GetUser(userID); !ok {
		return nil, ErrUserNotFound
	}
	sub := model.NewSubscription(userID, req.ProviderName, req.Plan, req.Cost, req.BillingCycle)
	s.store.PutSubscription(sub)
	return sub, nil
}

// ListByUser 列出某用户的全部订阅，未知用户返回空列表（不视为错误）
func (s *SubscriptionService) ListByUser(userID string) []*model.Subscription {
	result := make([]*model.Subscription, 0)
	for _, sub := range s.store.Subscriptions() {
		if sub.UserID == userID {
			result = append(result, sub)
		}
	}
	return result
}

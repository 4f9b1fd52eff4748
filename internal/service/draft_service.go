package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/qs3c/subnego_go_server/internal/model"
	"github.com/qs3c/subnego_go_server/internal/store"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrDraftNotFound        = errors.New("draft not found")
	ErrOutcomeNotFound      = errors.New("outcome not found")
)

// DraftService 草稿/谈判服务。草稿状态机：drafted -> sent。
// 重复批准同一草稿不会被拒绝，每次批准都生成一条新的 outcome
// （当前产品行为，保持原样）。
type DraftService struct {
	store *store.Store
}

func NewDraftService(st *store.Store) *DraftService {
	return &DraftService{store: st}
}

// GenerateDraft 基于订阅生成谈判草稿。
// tone 仅记录，暂不参与文案生成。
func (s *DraftService) GenerateDraft(subscriptionID, tone string) (*model.NegotiationDraft, error) {
	sub, ok := s.store.GetSubscription(subscriptionID)
	if !ok {
		return nil, ErrSubscriptionNotFound
	}

	msg := fmt.Sprintf(
		"Dear %s, I am a long-time customer and would like a better price on my %s plan.",
		sub.ProviderName, sub.Plan,
	)
	contact := map[string]string{
		"email": fmt.Sprintf("support@%s.com", sub.ProviderName),
	}

	draft := model.NewNegotiationDraft(subscriptionID, contact, msg, tone)
	s.store.PutDraft(draft)
	return draft, nil
}

// ApproveAndSend 批准并发送草稿，状态置为 sent，
// 并生成一条模拟的供应商响应结果（固定 10% 折扣）。
func (s *DraftService) ApproveAndSend(draftID string) (*model.NegotiationOutcome, error) {
	draft, ok := s.store.GetDraft(draftID)
	if !ok {
		return nil, ErrDraftNotFound
	}

	now := time.Now().UTC()
	draft.Status = model.DraftStatusSent
	draft.ApprovedAt = &now
	s.store.PutDraft(draft)

	outcome := model.NewNegotiationOutcome(
		draft.ID,
		"Provider offered 10% off",
		map[string]string{"discount": "10%"},
		model.ResultSucceeded,
	)
	s.store.PutOutcome(outcome)
	return outcome, nil
}

// GetDraft 按 id 查询草稿
func (s *DraftService) GetDraft(draftID string) (*model.NegotiationDraft, error) {
	draft, ok := s.store.GetDraft(draftID)
	if !ok {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// GetOutcome 按 id 查询结果
func (s *DraftService) GetOutcome(outcomeID string) (*model.NegotiationOutcome, error) {
	outcome, ok := s.store.GetOutcome(outcomeID)
	if !ok {
		return nil, ErrOutcomeNotFound
	}
	return outcome, nil
}

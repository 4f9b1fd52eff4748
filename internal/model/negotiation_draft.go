package model

import (
	"time"

	"github.com/google/uuid"
)

// 草稿状态机：drafted -> sent（批准后不可逆）
const (
	DraftStatusDrafted = "drafted"
	DraftStatusSent    = "sent"
)

type NegotiationDraft struct {
	ID              string            `json:"id"`
	SubscriptionID  string            `json:"subscription_id"`
	ProviderContact map[string]string `json:"provider_contact"`
	MessageText     string            `json:"message_text"`
	Tone            string            `json:"tone"`
	CreatedAt       time.Time         `json:"created_at"`
	Status          string            `json:"status"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty"`
}

// NewNegotiationDraft 创建谈判草稿，初始状态 drafted
func NewNegotiationDraft(subscriptionID string, providerContact map[string]string, messageText, tone string) *NegotiationDraft {
	return &NegotiationDraft{
		ID:              uuid.NewString(),
		SubscriptionID:  subscriptionID,
		ProviderContact: providerContact,
		MessageText:     messageText,
		Tone:            tone,
		CreatedAt:       time.Now().UTC(),
		Status:          DraftStatusDrafted,
	}
}

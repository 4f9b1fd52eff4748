package model

import (
	"time"

	"github.com/google/uuid"
)

// 同意状态
const (
	ConsentPending = "pending"
	ConsentGranted = "granted"
	ConsentRevoked = "revoked"
)

type UserProfile struct {
	ID                     string            `json:"id"`
	ConsentStatus          string            `json:"consent_status"` // pending, granted, revoked
	NegotiationPreferences map[string]string `json:"negotiation_preferences"`
	LinkedAccounts         []string          `json:"linked_accounts"`
	CreatedAt              time.Time         `json:"created_at"`
}

// NewUserProfile 创建用户档案，ID 生成后不可变
func NewUserProfile() *UserProfile {
	return &UserProfile{
		ID:                     uuid.NewString(),
		ConsentStatus:          ConsentPending,
		NegotiationPreferences: make(map[string]string),
		LinkedAccounts:         []string{},
		CreatedAt:              time.Now().UTC(),
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// 谈判结果
const (
	ResultSucceeded  = "succeeded"
	ResultFailed     = "failed"
	ResultNoResponse = "no_response"
)

// NegotiationOutcome 批准发送后生成的结果记录，创建后不再修改
type NegotiationOutcome struct {
	ID              string            `json:"id"`
	DraftID         string            `json:"draft_id"`
	ResponseSummary string            `json:"response_summary"`
	OfferDetails    map[string]string `json:"offer_details"`
	Result          string            `json:"result"`
	Timestamp       time.Time         `json:"timestamp"`
}

func NewNegotiationOutcome(draftID, responseSummary string, offerDetails map[string]string, result string) *NegotiationOutcome {
	return &NegotiationOutcome{
		ID:              uuid.NewString(),
		DraftID:         draftID,
		ResponseSummary: responseSummary,
		OfferDetails:    offerDetails,
		Result:          result,
		Timestamp:       time.Now().UTC(),
	}
}

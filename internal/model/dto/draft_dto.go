package dto

// GenerateDraftRequest 生成草稿请求，tone 目前只记录不参与文案
type GenerateDraftRequest struct {
	Tone string `json:"tone"`
}

// DraftCreatedResponse 草稿创建响应
type DraftCreatedResponse struct {
	DraftID string `json:"draft_id"`
}

// ApproveDraftResponse 批准草稿响应
type ApproveDraftResponse struct {
	OutcomeID string `json:"outcome_id"`
	Result    string `json:"result"`
}

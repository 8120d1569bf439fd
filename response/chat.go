package response

type ChatResponse struct {
	Response           string `json:"response"`
	SessionID          string `json:"session_id"`
	RewrittenQuery     string `json:"rewritten_query,omitempty"`
	RelevantToursCount int    `json:"relevant_tours_count"`

	// 生成模型调用失败时为 true，此时 Response 是固定的致歉文案
	Degraded bool `json:"degraded,omitempty"`
}

package request

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

type CreateSessionRequest struct {
	Title    string `json:"title"`
	Language string `json:"language"`
}

type UpdateSessionTitleRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
}

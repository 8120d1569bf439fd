package request

type TrackVisitorRequest struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	PagePath  string `json:"page_path"`
}

type TrackTourViewRequest struct {
	TourID    string  `json:"tour_id" binding:"required"`
	UserID    *string `json:"user_id"`
	IPAddress string  `json:"ip_address"`
}

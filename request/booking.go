package request

type CreateBookingRequest struct {
	TourID   string `json:"tour_id" binding:"required"`
	FullName string `json:"full_name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=9,max=15"`
	Message  string `json:"message"`
}

type CreateConsultationRequest struct {
	FullName string  `json:"full_name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone" binding:"required,min=9,max=15"`
	Message  string  `json:"message"`
	TourID   *string `json:"tour_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing confirmed completed cancelled"`
}

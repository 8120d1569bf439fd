package request

type CreateTourRequest struct {
	Title         string  `json:"title" binding:"required"`
	TitleEN       string  `json:"title_en"`
	Description   string  `json:"description"`
	DescriptionEN string  `json:"description_en"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Image         string  `json:"image"`
	Departure     string  `json:"departure"`
	Destination   string  `json:"destination"`
}

type UpdateTourRequest struct {
	Title         *string  `json:"title"`
	TitleEN       *string  `json:"title_en"`
	Description   *string  `json:"description"`
	DescriptionEN *string  `json:"description_en"`
	Price         *float64 `json:"price"`
	Image         *string  `json:"image"`
	Departure     *string  `json:"departure"`
	Destination   *string  `json:"destination"`
}

type FavoriteRequest struct {
	TourID string `json:"tour_id" binding:"required"`
}

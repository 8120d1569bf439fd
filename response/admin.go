package response

import "joigo-tour-backend/dao"

type CountSummary struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Done    int64 `json:"done"`
}

type VisitorSummary struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
}

type DashboardStatsResponse struct {
	Consultations CountSummary      `json:"consultations"`
	Bookings      CountSummary      `json:"bookings"`
	Visitors      VisitorSummary    `json:"visitors"`
	TourViews     int64             `json:"tour_views"`
	TopTours      []dao.TopTourView `json:"top_tours"`
}

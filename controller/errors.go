package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")

	ErrUserRegister  = errors.New("failed to register user")
	ErrGenerateToken = errors.New("failed to generate token")
	ErrUserLogin     = errors.New("failed to login")

	ErrChat               = errors.New("failed to process chat message")
	ErrCreateSession      = errors.New("failed to create a chat session")
	ErrGetSessions        = errors.New("failed to get chat sessions")
	ErrDeleteSession      = errors.New("failed to delete a chat session")
	ErrGetSessionMessages = errors.New("failed to get session messages")
	ErrUpdateSessionTitle = errors.New("failed to update session title")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionForbidden   = errors.New("not allowed to access this session")

	ErrGetTours       = errors.New("failed to get tours")
	ErrTourNotFound   = errors.New("tour not found")
	ErrCreateTour     = errors.New("failed to create tour")
	ErrUpdateTour     = errors.New("failed to update tour")
	ErrDeleteTour     = errors.New("failed to delete tour")
	ErrEnqueueReindex = errors.New("failed to enqueue tour index task")

	ErrCreateBooking      = errors.New("failed to create booking")
	ErrGetBookings        = errors.New("failed to get bookings")
	ErrUpdateStatus       = errors.New("failed to update status")
	ErrCreateConsultation = errors.New("failed to save consultation request")
	ErrGetConsultations   = errors.New("failed to get consultations")

	ErrAddFavorite    = errors.New("failed to add favorite")
	ErrRemoveFavorite = errors.New("failed to remove favorite")
	ErrGetFavorites   = errors.New("failed to get favorites")

	ErrGetProfile      = errors.New("failed to get profile")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUpdateProfile   = errors.New("failed to update profile")
	ErrUpdateRole      = errors.New("failed to update role")

	ErrGetDashboardStats = errors.New("failed to get dashboard stats")

	ErrPresignURL = errors.New("failed to generate presigned url")
)

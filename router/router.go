package router

import (
	"joigo-tour-backend/controller"
	"joigo-tour-backend/middleware"

	"github.com/gin-gonic/gin"
)

func Register() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		public := api.Group("")
		{
			public.POST("/auth/register", controller.Register)
			public.POST("/auth/login", controller.Login)

			public.GET("/tours", controller.GetTours)
			public.GET("/tours/:tour_id", controller.GetTour)
		}

		// 聊天和咨询对匿名开放，带凭证则解析身份
		optional := api.Group("")
		optional.Use(middleware.OptionalAuthMiddleware())
		{
			optional.POST("/chat", controller.Chat)
			optional.POST("/chat/sessions", controller.CreateSession)
			optional.GET("/chat/sessions/:session_id/messages", controller.GetSessionMessages)
			optional.PUT("/chat/sessions/title", controller.UpdateSessionTitle)
			optional.DELETE("/chat/sessions/:session_id", controller.DeleteSession)

			optional.POST("/consultations", controller.CreateConsultation)

			optional.POST("/tracking/visitor", controller.TrackVisitor)
			optional.POST("/tracking/tour-view", controller.TrackTourView)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/chat/sessions", controller.GetSessions)

			protected.POST("/bookings", controller.CreateBooking)
			protected.GET("/bookings/my-bookings", controller.GetMyBookings)

			protected.POST("/favorites", controller.AddFavorite)
			protected.GET("/favorites", controller.GetFavorites)
			protected.GET("/favorites/check/:tour_id", controller.CheckFavorite)
			protected.DELETE("/favorites/:tour_id", controller.RemoveFavorite)

			protected.GET("/profile", controller.GetProfile)
			protected.PUT("/profile", controller.UpdateProfile)
		}

		api.PUT("/profile/:user_id/role",
			middleware.AuthMiddleware(), middleware.AdminMiddleware(), controller.UpdateUserRole)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/tours", controller.CreateTour)
			admin.PUT("/tours/:tour_id", controller.UpdateTour)
			admin.DELETE("/tours/:tour_id", controller.DeleteTour)

			admin.GET("/dashboard/stats", controller.GetDashboardStats)
			admin.GET("/bookings", controller.GetAllBookings)
			admin.GET("/consultations", controller.GetAllConsultations)
			admin.PUT("/bookings/:id/status", controller.UpdateBookingStatus)
			admin.PUT("/consultations/:id/status", controller.UpdateConsultationStatus)

			admin.GET("/media/upload-url", controller.GetUploadURL)
			admin.GET("/media/download-url", controller.GetDownloadURL)
		}
	}

	return r
}

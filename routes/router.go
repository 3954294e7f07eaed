package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/handlers"
	"github.com/linskybing/gpu-reserve-go/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.GET("/ws/notifications", h.WS.Notifications)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		reservations := auth.Group("/reservations")
		{
			reservations.POST("", h.Reservation.CreateReservation)
			reservations.GET("", h.Reservation.ListReservations)
			reservations.GET("/:id", h.Reservation.GetReservation)
			reservations.DELETE("/:id", h.Reservation.CancelReservation)
			reservations.POST("/:id/confirm-rejection", h.Reservation.ConfirmRejection)
		}
		servers := auth.Group("/servers")
		{
			servers.GET("", h.Server.ListServers)
			servers.GET("/:id", h.Server.GetServer)
			servers.POST("", middleware.Admin(), h.Server.CreateServer)
			servers.PUT("/:id", middleware.Admin(), h.Server.UpdateServer)
			servers.DELETE("/:id", middleware.Admin(), h.Server.DeactivateServer)
		}
	}
}

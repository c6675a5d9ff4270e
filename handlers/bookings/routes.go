package bookings

import "github.com/gin-gonic/gin"

func RegisterBookingRoutes(r *gin.RouterGroup) {
	r.POST("/booking", CreateBooking)
	r.GET("/bookings", GetBookings)
	r.GET("/booking/:id", GetBooking)
	r.PUT("/booking/:id", UpdateBooking)
	r.DELETE("/booking/:id", DeleteBooking)
}

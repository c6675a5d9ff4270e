package properties

import "github.com/gin-gonic/gin"

func RegisterPropertyRoutes(r *gin.RouterGroup) {
	r.POST("/property", CreateProperty)
	r.GET("/properties", GetProperties)
	r.GET("/property/:id", GetProperty)
	r.PUT("/property/:id", UpdateProperty)
	r.DELETE("/property/:id", DeleteProperty)

	r.POST("/property-size", CreatePropertySize)
	r.GET("/property-sizes", GetPropertySizes)
	r.DELETE("/property-size/:id", DeletePropertySize)

	r.POST("/plc", CreatePLC)
	r.GET("/plcs", GetPLCs)
	r.PUT("/plc/:id", UpdatePLC)
	r.DELETE("/plc/:id", DeletePLC)
}

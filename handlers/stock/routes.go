package stock

import "github.com/gin-gonic/gin"

func RegisterStockRoutes(r *gin.RouterGroup) {
	r.POST("/stock", CreateStock)
	r.GET("/stock", GetStock)
	r.PUT("/stock/:id", UpdateStock)
	r.DELETE("/stock/:id", DeleteStock)
	r.POST("/stock/check-project", CheckProject)
	r.POST("/stock/check-property", CheckProperty)
	r.POST("/stock/check-stock-property", CheckStockProperty)
}

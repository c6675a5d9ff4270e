package banks

import "github.com/gin-gonic/gin"

func RegisterBankRoutes(r *gin.RouterGroup) {
	r.POST("/bank", CreateBank)
	r.GET("/banks", GetBanks)
	r.GET("/bank/:ifsc_code", GetBank)
	r.PUT("/bank/:ifsc_code", UpdateBank)
	r.DELETE("/bank/:ifsc_code", DeleteBank)
}

package installments

import "github.com/gin-gonic/gin"

func RegisterInstallmentRoutes(r *gin.RouterGroup) {
	r.POST("/add-new-installment-plan", CreatePlan)
	r.POST("/add-installment-details", AddDetails)
	r.GET("/installment-plans", GetPlans)
	r.GET("/installment-plan/:plan_name", GetPlan)
	r.PUT("/installment-plan/:plan_name", UpdatePlan)
	r.DELETE("/installment-plan/:plan_name", DeletePlan)
}

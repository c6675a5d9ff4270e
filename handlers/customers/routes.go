package customers

import "github.com/gin-gonic/gin"

func RegisterCustomerRoutes(r *gin.RouterGroup) {
	r.POST("/add-customer", CreateCustomer)
	r.GET("/get-customers", GetCustomers)
	r.GET("/customer/:customer_id", GetCustomer)
	r.PUT("/customer/:customer_id", UpdateCustomer)
	r.DELETE("/customer/:customer_id", DeleteCustomer)

	r.POST("/co-applicant", CreateCoApplicant)
	r.GET("/co-applicants", GetCoApplicants)
	r.PUT("/co-applicant/:id", UpdateCoApplicant)
	r.DELETE("/co-applicant/:id", DeleteCoApplicant)
}

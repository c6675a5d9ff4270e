package brokers

import "github.com/gin-gonic/gin"

func RegisterBrokerRoutes(r *gin.RouterGroup) {
	r.POST("/broker", CreateBroker)
	r.GET("/brokers", GetBrokers)
	r.GET("/broker/:broker_code", GetBroker)
	r.PUT("/broker/:broker_code", UpdateBroker)
	r.DELETE("/broker/:broker_code", DeleteBroker)
}

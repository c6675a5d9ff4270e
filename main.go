package main

import (
	"log"
	"os"
	"time"

	"realty-admin-server/handlers/auth"
	"realty-admin-server/handlers/banks"
	"realty-admin-server/handlers/bookings"
	"realty-admin-server/handlers/brokers"
	"realty-admin-server/handlers/customers"
	"realty-admin-server/handlers/installments"
	"realty-admin-server/handlers/logs"
	"realty-admin-server/handlers/projects"
	"realty-admin-server/handlers/properties"
	"realty-admin-server/handlers/stock"
	"realty-admin-server/migrations"
	"realty-admin-server/scheduler"
	"realty-admin-server/seed"
	"realty-admin-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()
	utils.RegisterValidations()

	migrations.MigrateAdmin()
	migrations.MigrateMasters()
	migrations.MigrateTransactions()

	// Seed Initial Data
	if err := seed.SeedSuperAdmin(); err != nil {
		log.Fatalf("Failed to seed superadmin: %v", err)
	}

	r.Static("/uploads", "uploads")

	r.POST("/api/auth/login", auth.Login)

	master := r.Group("/api/master")
	master.Use(auth.AuthMiddleware())
	{
		installments.RegisterInstallmentRoutes(master)
		projects.RegisterProjectRoutes(master)
		stock.RegisterStockRoutes(master)
		customers.RegisterCustomerRoutes(master)
		banks.RegisterBankRoutes(master)
		brokers.RegisterBrokerRoutes(master)
		properties.RegisterPropertyRoutes(master)
	}

	transaction := r.Group("/api/transaction")
	transaction.Use(auth.AuthMiddleware())
	{
		bookings.RegisterBookingRoutes(transaction)
	}

	admin := r.Group("/api")
	admin.Use(auth.AuthMiddleware())
	{
		auth.RegisterUserRoutes(admin)
	}

	logGroup := r.Group("/api/logs")
	logGroup.Use(auth.AuthMiddleware())
	{
		logs.RegisterLogRoutes(logGroup)
	}

	sched := scheduler.New(utils.DB)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

package main

import (
	"github.com/gin-gonic/gin"

	"github.com/openhaul/loadboard/config"
	"github.com/openhaul/loadboard/db"
	_ "github.com/openhaul/loadboard/docs"
	"github.com/openhaul/loadboard/middleware"
	"github.com/openhaul/loadboard/minio"
	"github.com/openhaul/loadboard/routes"
)

// @title Loadboard API
// @version 1.0
// @description Freight load board API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and apply pending migrations
	db.Init()

	// Initialize MinIO client for load documents
	minio.InitMinio()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r)
	r.Run(":" + config.ServerPort)
}

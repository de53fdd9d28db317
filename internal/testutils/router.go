package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/openhaul/loadboard/routes"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

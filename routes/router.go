package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/openhaul/loadboard/handlers"
	"github.com/openhaul/loadboard/middleware"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/repositories"
	"github.com/openhaul/loadboard/services"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repositories.NewDBRepos()
	svc := services.New(repos)
	h := handlers.New(svc)

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.GET("/ws/board", handlers.BoardFeedHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.Auth.GetMe)

		loads := auth.Group("/loads")
		{
			loads.GET("", h.Load.ListLoads)
			loads.GET("/:id", h.Load.GetLoadByID)
			loads.POST("", middleware.AuthorizeRole(models.UserRoleShipper), h.Load.PostLoad)
			loads.PUT("/:id", middleware.AuthorizeRole(models.UserRoleShipper), h.Load.UpdateLoad)
			loads.DELETE("/:id", middleware.AuthorizeRole(models.UserRoleShipper), h.Load.DeleteLoad)
			loads.POST("/:id/book", middleware.AuthorizeRole(models.UserRoleCarrier), h.Load.BookLoad)
			loads.POST("/:id/release", h.Load.ReleaseLoad)
			loads.GET("/:id/documents", h.Document.ListDocuments)
			loads.POST("/:id/documents", h.Document.UploadDocument)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("/:id/download", h.Document.DownloadDocument)
			documents.DELETE("/:id", h.Document.DeleteDocument)
		}

		users := auth.Group("/users")
		{
			users.GET("", h.User.GetUsers)
			users.GET(":id", h.User.GetUserByID)
			users.PUT(":id", middleware.AuthorizeUserOrAdmin(), h.User.UpdateUser)
			users.DELETE(":id", middleware.AuthorizeUserOrAdmin(), h.User.DeleteUser)
		}

		audit := auth.Group("/audit/logs")
		audit.Use(middleware.AuthorizeAdmin())
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}

		admin := auth.Group("/admin")
		admin.Use(middleware.AuthorizeAdmin())
		{
			admin.GET("/schema", h.Admin.GetSchemaStatus)
		}
	}
}

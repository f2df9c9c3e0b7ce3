package app

import (
	"github.com/RithigaS/BACKEND/internal/config"
	"github.com/RithigaS/BACKEND/internal/handlers"
	"github.com/RithigaS/BACKEND/internal/repo"
	"github.com/RithigaS/BACKEND/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.mongodb.org/mongo-driver/mongo"
)

// Setup registers all routes on the given engine. Route paths match the
// frontend verbatim, including the update-blog/delete-blog naming.
func Setup(r *gin.Engine, cfg config.Config, db *mongo.Database) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	userRepo := repo.NewMongoUserRepo(db)
	blogRepo := repo.NewMongoBlogRepo(db)

	userHandler := handlers.NewUserHandler(service.NewUserService(userRepo, blogRepo))
	blogHandler := handlers.NewBlogHandler(service.NewBlogService(blogRepo))

	registerUserRoutes(r, userHandler)
	registerBlogRoutes(r, blogHandler)
}

func registerUserRoutes(r *gin.Engine, h *handlers.UserHandler) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
}

func registerBlogRoutes(r *gin.Engine, h *handlers.BlogHandler) {
	r.POST("/blogs/create", h.Create)
	r.GET("/blogs", h.List)
	r.PUT("/update-blog/:id", h.Update)
	r.DELETE("/delete-blog/:id", h.Delete)
	r.POST("/blogs/comment/:id", h.AddComment)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Blog API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

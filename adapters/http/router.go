package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J33rry/predusk/pkg/auth"
	"github.com/J33rry/predusk/pkg/logger"
)

// RouterConfig bundles everything the route table needs. Tests build a
// router from fakes with the same function the server uses.
type RouterConfig struct {
	ProfileHandler *ProfileHandler
	ProjectHandler *ProjectHandler
	SearchHandler  *SearchHandler
	SkillHandler   *SkillHandler
	AuthHandler    *AuthHandler
	JWTService     *auth.JWTService
	Logger         logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(cfg.Logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})

		api.POST("/auth/login", cfg.AuthHandler.Login)

		profiles := api.Group("/profile")
		{
			profiles.GET("", cfg.ProfileHandler.ListProfiles)
			profiles.POST("", OptionalAuthMiddleware(cfg.JWTService), cfg.ProfileHandler.CreateProfile)
			profiles.PUT("", cfg.ProfileHandler.UpdateFirstProfile)
			profiles.GET("/:id", cfg.ProfileHandler.GetProfile)
			profiles.PUT("/:id", cfg.ProfileHandler.UpdateProfile)
			profiles.DELETE("/:id", cfg.ProfileHandler.DeleteProfile)
		}

		api.GET("/projects", cfg.ProjectHandler.ListProjects)
		api.GET("/search", cfg.SearchHandler.Search)
		api.GET("/skills/top", cfg.SkillHandler.TopSkills)

		me := api.Group("/me")
		me.Use(AuthMiddleware(cfg.JWTService))
		{
			me.GET("/profile", cfg.ProfileHandler.GetMyProfile)
		}
	}

	return router
}

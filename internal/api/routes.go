package api

import (
	"net/http"

	"docquiz/internal/api/handlers"
	"docquiz/internal/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the API routes
func SetupRoutes(router *gin.Engine, handler *handlers.Handler, verifier *auth.Verifier) {
	// Cross-origin access is permitted from any origin; pre-flight OPTIONS is
	// answered by the CORS layer.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "GET", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept",
			"Accept-Encoding", "Authorization", "X-Requested-With", "Cache-Control"},
	}))

	// Unregistered verbs on registered paths answer 405 instead of 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := router.Group("/api")
	{
		// Guest pipeline: stateless, no persistence, 5-question sample.
		api.POST("/generate-guest", handler.HandleGenerateGuestFile)
		api.POST("/generate-url-guest", handler.HandleGenerateGuestURL)

		// Authenticated pipeline - requires a bearer credential.
		authorized := api.Group("/")
		authorized.Use(AuthRequired(verifier))
		{
			authorized.POST("/generate", handler.HandleGenerate)      // Generate and persist a 7-question quiz
			authorized.POST("/uploads", handler.HandleUploadMaterial) // Stage a material file in object storage

			authorized.GET("/quizzes", handler.HandleListUserQuizzes)
			authorized.GET("/quizzes/:quizId", handler.HandleGetQuiz)
			authorized.DELETE("/quizzes/:quizId", handler.HandleDeleteQuiz)
		}
	}
}

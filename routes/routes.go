package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"nutrifacts/controllers"
	"nutrifacts/middlewares"
)

func SetupRouter(
	rc *controllers.RecipeController,
	fc *controllers.FoodController,
	nc *controllers.NutrientController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestid.New(), cors.Default(), middlewares.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		api.POST("/recipe/nutrients", rc.GetNutrients)

		foods := api.Group("/foods")
		{
			foods.GET("/search", fc.SearchFood)
			foods.GET("/by-nutrients", fc.FoodsByNutrients)
			foods.GET("/by-property", fc.FoodsByProperty)
			foods.GET("/:id", fc.GetFood)
		}

		api.GET("/nutrients/search", nc.Search)
	}

	return r
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrifacts/models"
	"nutrifacts/services"
)

type RecipeController struct {
	svc *services.RecipeService
}

func NewRecipeController(svc *services.RecipeService) *RecipeController {
	return &RecipeController{svc: svc}
}

// POST /recipe/nutrients
// [{"recipe_str":"2 and 1/2 l of olive oil"},{"label":"sugar","quantity":20}]
func (rc *RecipeController) GetNutrients(c *gin.Context) {
	var lines []models.IngredientLine
	if err := c.ShouldBindJSON(&lines); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	result, err := rc.svc.ResolveRecipe(c.Request.Context(), lines)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

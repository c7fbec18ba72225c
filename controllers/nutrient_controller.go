package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrifacts/services"
)

type NutrientController struct {
	catalog *services.CatalogService
}

func NewNutrientController(catalog *services.CatalogService) *NutrientController {
	return &NutrientController{catalog: catalog}
}

// GET /nutrients/search?q=beta+carotene
func (nc *NutrientController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
		return
	}

	nutrients, err := nc.catalog.NutrientsByQuery(c.Request.Context(), q)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, nutrients)
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"nutrifacts/models"
	"nutrifacts/services"
)

type FoodController struct {
	catalog *services.CatalogService
}

func NewFoodController(catalog *services.CatalogService) *FoodController {
	return &FoodController{catalog: catalog}
}

// GET /foods/:id?nutrients=true
func (fc *FoodController) GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	food, err := fc.catalog.FoodByID(c.Request.Context(), uint(id), boolQuery(c, "nutrients", true))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if food == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

// GET /foods/search?q=tomato+sauce&nutrients=true
func (fc *FoodController) SearchFood(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
		return
	}

	food, err := fc.catalog.FoodByQuery(c.Request.Context(), q, boolQuery(c, "nutrients", false))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if food == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching food"})
		return
	}
	c.JSON(http.StatusOK, food)
}

// GET /foods/by-nutrients?ids=15,18&op=OR
func (fc *FoodController) FoodsByNutrients(c *gin.Context) {
	ids, err := parseIDs(c.Query("ids"))
	if err != nil || len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids required"})
		return
	}

	op := strings.ToUpper(c.DefaultQuery("op", models.OperatorOr))
	if op != models.OperatorAnd && op != models.OperatorOr {
		c.JSON(http.StatusBadRequest, gin.H{"error": "op must be AND or OR"})
		return
	}

	foods, err := fc.catalog.FoodsByNutrientIDs(c.Request.Context(), ids, op)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /foods/by-property?q=good+for+the+skin
func (fc *FoodController) FoodsByProperty(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query required"})
		return
	}

	foods, err := fc.catalog.FoodsByProperty(c.Request.Context(), q)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func boolQuery(c *gin.Context, name string, fallback bool) bool {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func parseIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

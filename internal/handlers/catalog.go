package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagedai-backend/internal/models"
)

// CatalogHandler serves the option lists the intake wizard renders.
func CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"goals":               models.PropertyGoals,
		"property_types":      models.PropertyTypes,
		"personas":            models.BuyerPersonas,
		"styles":              models.StagingStyles,
		"market_positionings": models.MarketPositionings,
		"usage_platforms":     models.UsagePlatforms,
		"emotional_tones":     models.EmotionalTones,
	})
}

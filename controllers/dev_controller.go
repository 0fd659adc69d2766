package controllers

import (
	"net/http"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

// SeedCatalog loads the exercise-type catalog. Safe to call repeatedly.
func SeedCatalog(c *gin.Context) {
	if err := services.SeedExerciseTypes(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SeedDemo creates the demo account with fixture data. Dev environments only;
// fails with a conflict once the demo user exists.
func SeedDemo(c *gin.Context) {
	if err := services.SeedDemoData(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

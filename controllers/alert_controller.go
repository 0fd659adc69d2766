package controllers

import (
	"net/http"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	userID := c.GetUint("userID")

	alerts, err := services.ListAlerts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type RecordWeightInput struct {
	WeightKg float64 `json:"weight_kg" binding:"required"`
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	Notes    string  `json:"notes"`
}

func RecordWeight(c *gin.Context) {
	userID := c.GetUint("userID")

	var input RecordWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	record, err := services.RecordWeight(userID, input.WeightKg, date, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func ListWeights(c *gin.Context) {
	userID := c.GetUint("userID")

	records, err := services.WeightHistory(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func GetLatestWeight(c *gin.Context) {
	userID := c.GetUint("userID")

	record, err := services.LatestWeight(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func UpdateWeightNote(c *gin.Context) {
	userID := c.GetUint("userID")
	recordID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.UpdateWeightNote(userID, recordID, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func DeleteWeight(c *gin.Context) {
	userID := c.GetUint("userID")
	recordID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	if err := services.DeleteWeightRecord(userID, recordID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}

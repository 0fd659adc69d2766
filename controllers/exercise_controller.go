package controllers

import (
	"net/http"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type CreateExerciseTypeInput struct {
	Name              string  `json:"name" binding:"required"`
	Category          string  `json:"category"`
	CaloriesPerMinute float64 `json:"calories_per_minute" binding:"required"`
}

// CreateExerciseType adds a catalog entry. The catalog is shared, so this
// sits on the admin surface rather than the per-user one.
func CreateExerciseType(c *gin.Context) {
	var input CreateExerciseTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	et, err := services.CreateExerciseType(input.Name, input.Category, input.CaloriesPerMinute)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, et)
}

func ListExerciseTypes(c *gin.Context) {
	types, err := services.ListExerciseTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

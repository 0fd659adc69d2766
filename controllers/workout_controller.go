package controllers

import (
	"net/http"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type LogWorkoutInput struct {
	ExerciseTypeID  uint   `json:"exercise_type_id" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Intensity       string `json:"intensity"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	CaloriesBurned  *int   `json:"calories_burned"`         // omitted → derived from the exercise type
	Notes           string `json:"notes"`
}

func LogWorkout(c *gin.Context) {
	userID := c.GetUint("userID")

	var input LogWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	session, err := services.LogWorkout(
		userID,
		input.ExerciseTypeID,
		input.DurationMinutes,
		input.Intensity,
		date,
		input.CaloriesBurned,
		input.Notes,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func ListWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	sessions, err := services.ListWorkouts(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func DeleteWorkout(c *gin.Context) {
	userID := c.GetUint("userID")
	sessionID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := services.DeleteWorkout(userID, sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

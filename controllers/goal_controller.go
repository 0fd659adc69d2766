package controllers

import (
	"net/http"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type SetGoalInput struct {
	GoalType     string  `json:"goal_type" binding:"required"`
	TargetValue  float64 `json:"target_value" binding:"required"`
	TargetDate   string  `json:"target_date" binding:"required"` // YYYY-MM-DD
	CurrentValue float64 `json:"current_value"`                  // defaults to 0
}

func SetGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input SetGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetDate, err := time.Parse("2006-01-02", input.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	goal, err := services.SetGoal(userID, input.GoalType, input.TargetValue, targetDate, input.CurrentValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func ListGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := services.ListGoals(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func GetGoalProgress(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	goal, ratio, err := services.GoalProgress(userID, goalID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goal":    goal,
		"ratio":   ratio,
		"percent": ratio * 100,
	})
}

func UpdateGoalProgress(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	// pointer so an explicit zero passes the required binding
	var input struct {
		CurrentValue *float64 `json:"current_value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoalProgress(userID, goalID, *input.CurrentValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func UpdateGoalStatus(c *gin.Context) {
	userID := c.GetUint("userID")
	goalID, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoalStatus(userID, goalID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

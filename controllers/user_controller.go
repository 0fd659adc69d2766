package controllers

import (
	"net/http"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetUserProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"age":       user.Age,
		"height_cm": user.HeightCm,
	})
}

// DeleteAccount cascades: all of the user's weight records, workout sessions,
// goals and alerts go with it.
func DeleteAccount(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteUser(userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

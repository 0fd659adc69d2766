package controllers

import (
	"net/http"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Svc: svc}
}

// WeightSeries returns the chart-ready weight time series, oldest first.
func (a *AnalyticsController) WeightSeries(c *gin.Context) {
	userID := c.GetUint("userID")

	points, err := a.Svc.WeightSeries(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, points)
}

// DailyCalories sums calories burned per date over ?from=YYYY-MM-DD&to=YYYY-MM-DD,
// defaulting to the last 30 days.
func (a *AnalyticsController) DailyCalories(c *gin.Context) {
	userID := c.GetUint("userID")

	to := time.Now()
	from := to.AddDate(0, 0, -29)
	var err error
	if s := c.Query("from"); s != "" {
		if from, err = time.Parse("2006-01-02", s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date. Use YYYY-MM-DD"})
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = time.Parse("2006-01-02", s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date. Use YYYY-MM-DD"})
			return
		}
	}

	days, err := a.Svc.CaloriesByDate(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}

// WeeklyCalories reports the 7-day window starting at ?week_start, defaulting
// to the most recent Monday.
func (a *AnalyticsController) WeeklyCalories(c *gin.Context) {
	userID := c.GetUint("userID")

	weekStart := mostRecentMonday(time.Now())
	if s := c.Query("week_start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'week_start' date. Use YYYY-MM-DD"})
			return
		}
		weekStart = parsed
	}

	week, err := a.Svc.WeeklyCalories(c.Request.Context(), userID, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, week)
}

// Summary assembles the dashboard front-page numbers for the last 30 days.
func (a *AnalyticsController) Summary(c *gin.Context) {
	userID := c.GetUint("userID")

	to := time.Now()
	from := to.AddDate(0, 0, -29)

	summary, err := a.Svc.Summary(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func mostRecentMonday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

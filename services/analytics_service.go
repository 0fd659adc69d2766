package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rikuto-mikado/fitness-tracker/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Weight series ----------

type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	Notes    string  `json:"notes,omitempty"`
}

// WeightSeries returns the user's weight records as chart-ready points,
// ordered by recorded date ascending. Read-only and stateless: repeated calls
// without intervening writes yield identical sequences.
func (s *AnalyticsService) WeightSeries(ctx context.Context, userID uint) ([]WeightPoint, error) {
	var records []models.WeightRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_date asc, id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}

	points := make([]WeightPoint, 0, len(records))
	for _, r := range records {
		points = append(points, WeightPoint{
			Date:     r.RecordedDate.Format("2006-01-02"),
			WeightKg: r.WeightKg,
			Notes:    r.Notes,
		})
	}
	return points, nil
}

// ---------- Calorie totals ----------

type DailyCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Sessions int    `json:"sessions"`
}

// CaloriesByDate sums calories burned per workout date over [from, to].
// Days without sessions are omitted.
func (s *AnalyticsService) CaloriesByDate(ctx context.Context, userID uint, from, to time.Time) ([]DailyCalories, error) {
	var sessions []models.WorkoutSession
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND workout_date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("workout_date asc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	type acc struct {
		calories int
		sessions int
	}
	idx := map[string]*acc{}
	var order []string
	for _, ws := range sessions {
		key := ws.WorkoutDate.Format("2006-01-02")
		a := idx[key]
		if a == nil {
			a = &acc{}
			idx[key] = a
			order = append(order, key)
		}
		a.calories += ws.CaloriesBurned
		a.sessions++
	}

	out := make([]DailyCalories, 0, len(order))
	for _, key := range order {
		out = append(out, DailyCalories{Date: key, Calories: idx[key].calories, Sessions: idx[key].sessions})
	}
	return out, nil
}

type WeeklyCalories struct {
	WeekStart     string          `json:"week_start"`
	TotalCalories int             `json:"total_calories"`
	Days          []DailyCalories `json:"days"`
}

// WeeklyCalories reports per-day and total calories for the 7-day window
// starting at weekStart. Every day appears, zero-filled when empty.
func (s *AnalyticsService) WeeklyCalories(ctx context.Context, userID uint, weekStart time.Time) (*WeeklyCalories, error) {
	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 6)

	byDate, err := s.CaloriesByDate(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	idx := map[string]DailyCalories{}
	for _, d := range byDate {
		idx[d.Date] = d
	}

	out := &WeeklyCalories{WeekStart: from.Format("2006-01-02")}
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		day, ok := idx[key]
		if !ok {
			day = DailyCalories{Date: key}
		}
		out.Days = append(out.Days, day)
		out.TotalCalories += day.Calories
	}
	return out, nil
}

// ---------- Dashboard summary ----------

type GoalProgressEntry struct {
	Goal     models.Goal `json:"goal"`
	Baseline float64     `json:"baseline"`
	Ratio    float64     `json:"ratio"`
	Percent  float64     `json:"percent"`
}

type DashboardSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	LatestWeightKg float64 `json:"latest_weight_kg,omitempty"`
	TotalWorkouts  int64   `json:"total_workouts"`
	TotalCalories  int     `json:"total_calories"`
	TotalMinutes   int     `json:"total_minutes"`

	Goals []GoalProgressEntry `json:"goals"`
}

// Summary assembles the numbers the dashboard front page renders.
func (s *AnalyticsService) Summary(ctx context.Context, userID uint, from, to time.Time) (*DashboardSummary, error) {
	out := &DashboardSummary{}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = to.Format("2006-01-02")

	var latest models.WeightRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_date desc, id desc").
		First(&latest).Error
	switch {
	case err == nil:
		out.LatestWeightKg = latest.WeightKg
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var sessions []models.WorkoutSession
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND workout_date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	out.TotalWorkouts = int64(len(sessions))
	for _, ws := range sessions {
		out.TotalCalories += ws.CaloriesBurned
		out.TotalMinutes += ws.DurationMinutes
	}

	baseline := out.LatestWeightKg
	var first models.WeightRecord
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_date asc, id asc").
		First(&first).Error
	switch {
	case err == nil:
		baseline = first.WeightKg
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	for _, g := range goals {
		b := baseline
		if b == 0 {
			b = g.CurrentValue
		}
		ratio := ProgressRatio(g.GoalType, b, g.CurrentValue, g.TargetValue)
		out.Goals = append(out.Goals, GoalProgressEntry{
			Goal:     g,
			Baseline: b,
			Ratio:    ratio,
			Percent:  round2(ratio * 100),
		})
	}

	return out, nil
}

// ---------- internals ----------

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

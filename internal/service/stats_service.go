package service

import (
	"context"
	"math"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// SummaryStats are the aggregate numbers shown at the top of the stats
// page.
type SummaryStats struct {
	TotalWorkouts  int    `json:"totalWorkouts"`
	TotalCalories  int    `json:"totalCalories"`
	AvgDuration    int    `json:"avgDuration"` // minutes, rounded
	MostCommonType string `json:"mostCommonType"`
	CurrentStreak  int    `json:"currentStreak"` // consecutive days
}

// ChartSeries is a label/value pairing consumed directly by the chart
// renderer.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// StatsService derives aggregate statistics and chart series from the
// workout history. Read-only.
type StatsService interface {
	GetSummary(ctx context.Context) (*SummaryStats, error)
	GetWeeklyDuration(ctx context.Context) (*ChartSeries, error)
	GetCaloriesByType(ctx context.Context) (*ChartSeries, error)
	GetTypeDistribution(ctx context.Context) (*ChartSeries, error)
}

// statsService implements the StatsService interface.
type statsService struct {
	workoutRepo repository.WorkoutRepository
	now         func() time.Time
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(workoutRepo repository.WorkoutRepository) StatsService {
	return &statsService{
		workoutRepo: workoutRepo,
		now:         time.Now,
	}
}

// GetSummary computes the headline numbers over the full history.
func (s *statsService) GetSummary(ctx context.Context) (*SummaryStats, error) {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &SummaryStats{
		TotalWorkouts:  len(workouts),
		MostCommonType: "-",
	}
	if len(workouts) == 0 {
		return stats, nil
	}

	totalDuration := 0
	typeCounts := make(map[domain.WorkoutType]int)
	for _, w := range workouts {
		stats.TotalCalories += w.Calories
		totalDuration += w.Duration
		typeCounts[w.Type]++
	}
	stats.AvgDuration = int(math.Round(float64(totalDuration) / float64(len(workouts))))
	stats.CurrentStreak = CurrentStreak(workouts)

	// Walk the fixed type order so count ties resolve deterministically.
	best := 0
	for _, t := range typeOrder {
		if count := typeCounts[t]; count > best {
			best = count
			stats.MostCommonType = capitalizeFirst(string(t))
		}
	}
	return stats, nil
}

// GetWeeklyDuration returns per-day duration sums for the last 7
// calendar days, oldest first, labeled by weekday.
func (s *statsService) GetWeeklyDuration(ctx context.Context) (*ChartSeries, error) {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]int)
	for _, w := range workouts {
		if w.Date.IsZero() {
			continue
		}
		byDay[domain.DateOnly(w.Date)] += w.Duration
	}

	series := &ChartSeries{
		Labels: make([]string, 0, 7),
		Data:   make([]float64, 0, 7),
	}
	start := domain.DateOnly(s.now()).AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		series.Labels = append(series.Labels, day.Format("Mon"))
		series.Data = append(series.Data, float64(byDay[day]))
	}
	return series, nil
}

// GetCaloriesByType returns total calories burned per workout type.
func (s *statsService) GetCaloriesByType(ctx context.Context) (*ChartSeries, error) {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[domain.WorkoutType]int)
	for _, w := range workouts {
		totals[w.Type] += w.Calories
	}
	return seriesFromTypeTotals(totals), nil
}

// GetTypeDistribution returns the workout count per type.
func (s *statsService) GetTypeDistribution(ctx context.Context) (*ChartSeries, error) {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.WorkoutType]int)
	for _, w := range workouts {
		counts[w.Type]++
	}
	return seriesFromTypeTotals(counts), nil
}

// typeOrder fixes the label ordering of per-type chart series.
var typeOrder = []domain.WorkoutType{
	domain.WorkoutRunning,
	domain.WorkoutCycling,
	domain.WorkoutSwimming,
	domain.WorkoutStrength,
	domain.WorkoutYoga,
	domain.WorkoutHIIT,
}

func seriesFromTypeTotals(totals map[domain.WorkoutType]int) *ChartSeries {
	series := &ChartSeries{}
	for _, t := range typeOrder {
		value, ok := totals[t]
		if !ok {
			continue
		}
		series.Labels = append(series.Labels, capitalizeFirst(string(t)))
		series.Data = append(series.Data, float64(value))
	}
	return series
}

package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// AchievementService awards one-time badges based on the workout
// history. Badges are never revoked, even when the workout that earned
// them is deleted.
type AchievementService interface {
	// CheckAndAward scans the workout history and awards any badge
	// whose condition is newly met. Safe to call repeatedly.
	CheckAndAward(ctx context.Context) error
	GetAchievements(ctx context.Context) ([]domain.Achievement, error)
}

// achievementService implements the AchievementService interface.
type achievementService struct {
	achievementRepo  repository.AchievementRepository
	workoutRepo      repository.WorkoutRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewAchievementService creates a new instance of achievementService.
func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	workoutRepo repository.WorkoutRepository,
	notificationRepo repository.NotificationRepository,
) AchievementService {
	return &achievementService{
		achievementRepo:  achievementRepo,
		workoutRepo:      workoutRepo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// CheckAndAward evaluates every catalog badge against the current
// workout history.
func (s *achievementService) CheckAndAward(ctx context.Context) error {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	totalCalories := 0
	for _, w := range workouts {
		totalCalories += w.Calories
	}
	streak := CurrentStreak(workouts)

	conditions := map[string]bool{
		domain.AchievementFirstWorkout: len(workouts) >= 1,
		domain.AchievementStreak3:      streak >= 3,
		domain.AchievementStreak7:      streak >= 7,
		domain.AchievementCalories500:  totalCalories >= 500,
		domain.AchievementCalories1000: totalCalories >= 1000,
	}

	for _, def := range domain.AchievementCatalog {
		if !conditions[def.Code] {
			continue
		}
		earned, err := s.achievementRepo.ExistsByCode(ctx, def.Code)
		if err != nil {
			return err
		}
		if earned {
			continue
		}
		s.award(ctx, def)
	}
	return nil
}

// GetAchievements returns every earned badge in award order.
func (s *achievementService) GetAchievements(ctx context.Context) ([]domain.Achievement, error) {
	return s.achievementRepo.GetAll(ctx)
}

func (s *achievementService) award(ctx context.Context, def domain.AchievementDef) {
	achievement := &domain.Achievement{
		Code:        def.Code,
		Title:       def.Title,
		Description: def.Description,
		Icon:        def.Icon,
		DateEarned:  s.now().UTC(),
	}
	if _, err := s.achievementRepo.Create(ctx, achievement); err != nil {
		log.Printf("ERROR: failed to record achievement %s: %v", def.Code, err)
		return
	}

	notification := &domain.Notification{
		Kind:    domain.NotificationAchievementEarned,
		Message: fmt.Sprintf("🏆 New Achievement: %s!", def.Title),
	}
	if _, err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("ERROR: failed to record achievement notification %s: %v", def.Code, err)
	}
}

// CurrentStreak counts consecutive workout days ending at the most
// recent workout. Multiple workouts on the same day extend the streak
// by at most one.
func CurrentStreak(workouts []domain.Workout) int {
	if len(workouts) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(workouts))
	for _, w := range workouts {
		if w.Date.IsZero() {
			continue
		}
		days[domain.DateOnly(w.Date)] = true
	}
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	streak := 1
	current := sorted[0]
	for _, d := range sorted[1:] {
		if current.Sub(d) == 24*time.Hour {
			streak++
			current = d
		} else {
			break
		}
	}
	return streak
}

package service

import (
	"context"
	"testing"
	"time"

	"fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAchievementServiceFixture(t *testing.T, now time.Time) (*achievementService, *fakeWorkoutRepo, *fakeAchievementRepo, *fakeNotificationRepo) {
	t.Helper()
	workouts := newFakeWorkoutRepo()
	achievements := newFakeAchievementRepo()
	notifications := newFakeNotificationRepo()

	svc, ok := NewAchievementService(achievements, workouts, notifications).(*achievementService)
	require.True(t, ok)
	svc.now = func() time.Time { return now }
	return svc, workouts, achievements, notifications
}

func addWorkoutOn(t *testing.T, repo *fakeWorkoutRepo, date time.Time, calories int) {
	t.Helper()
	_, err := repo.Create(context.Background(), &domain.Workout{
		Type:     domain.WorkoutRunning,
		Category: domain.CategoryCardio,
		Date:     date,
		Duration: 30,
		Calories: calories,
	})
	require.NoError(t, err)
}

func TestCheckAndAward(t *testing.T) {
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("first workout earns the badge with a notification", func(t *testing.T) {
		svc, workouts, achievements, notifications := newAchievementServiceFixture(t, now)
		addWorkoutOn(t, workouts, day(2026, time.March, 12), 100)

		require.NoError(t, svc.CheckAndAward(ctx))

		earned, err := achievements.ExistsByCode(ctx, domain.AchievementFirstWorkout)
		require.NoError(t, err)
		assert.True(t, earned)

		require.Len(t, notifications.notifications, 1)
		assert.Equal(t, domain.NotificationAchievementEarned, notifications.notifications[0].Kind)
	})

	t.Run("badges are awarded at most once", func(t *testing.T) {
		svc, workouts, achievements, _ := newAchievementServiceFixture(t, now)
		addWorkoutOn(t, workouts, day(2026, time.March, 12), 100)

		require.NoError(t, svc.CheckAndAward(ctx))
		require.NoError(t, svc.CheckAndAward(ctx))
		require.NoError(t, svc.CheckAndAward(ctx))

		all, err := achievements.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("calorie badges trip on cumulative totals", func(t *testing.T) {
		svc, workouts, achievements, _ := newAchievementServiceFixture(t, now)
		addWorkoutOn(t, workouts, day(2026, time.March, 10), 300)
		addWorkoutOn(t, workouts, day(2026, time.March, 11), 300)

		require.NoError(t, svc.CheckAndAward(ctx))

		earned500, err := achievements.ExistsByCode(ctx, domain.AchievementCalories500)
		require.NoError(t, err)
		assert.True(t, earned500)

		earned1000, err := achievements.ExistsByCode(ctx, domain.AchievementCalories1000)
		require.NoError(t, err)
		assert.False(t, earned1000)

		addWorkoutOn(t, workouts, day(2026, time.March, 12), 500)
		require.NoError(t, svc.CheckAndAward(ctx))

		earned1000, err = achievements.ExistsByCode(ctx, domain.AchievementCalories1000)
		require.NoError(t, err)
		assert.True(t, earned1000)
	})

	t.Run("three-day streak earns the streak badge", func(t *testing.T) {
		svc, workouts, achievements, _ := newAchievementServiceFixture(t, now)
		addWorkoutOn(t, workouts, day(2026, time.March, 10), 100)
		addWorkoutOn(t, workouts, day(2026, time.March, 11), 100)
		addWorkoutOn(t, workouts, day(2026, time.March, 12), 100)

		require.NoError(t, svc.CheckAndAward(ctx))

		earned, err := achievements.ExistsByCode(ctx, domain.AchievementStreak3)
		require.NoError(t, err)
		assert.True(t, earned)

		earned7, err := achievements.ExistsByCode(ctx, domain.AchievementStreak7)
		require.NoError(t, err)
		assert.False(t, earned7)
	})

	t.Run("empty history earns nothing", func(t *testing.T) {
		svc, _, achievements, _ := newAchievementServiceFixture(t, now)

		require.NoError(t, svc.CheckAndAward(ctx))

		all, err := achievements.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestCurrentStreak(t *testing.T) {
	workoutOn := func(date time.Time) domain.Workout {
		return domain.Workout{Type: domain.WorkoutRunning, Category: domain.CategoryCardio, Date: date}
	}

	tests := []struct {
		name     string
		workouts []domain.Workout
		want     int
	}{
		{
			name:     "no workouts",
			workouts: nil,
			want:     0,
		},
		{
			name:     "single day",
			workouts: []domain.Workout{workoutOn(day(2026, time.March, 12))},
			want:     1,
		},
		{
			name: "three consecutive days",
			workouts: []domain.Workout{
				workoutOn(day(2026, time.March, 10)),
				workoutOn(day(2026, time.March, 11)),
				workoutOn(day(2026, time.March, 12)),
			},
			want: 3,
		},
		{
			name: "gap resets the streak",
			workouts: []domain.Workout{
				workoutOn(day(2026, time.March, 8)),
				workoutOn(day(2026, time.March, 11)),
				workoutOn(day(2026, time.March, 12)),
			},
			want: 2,
		},
		{
			name: "multiple workouts on one day count once",
			workouts: []domain.Workout{
				workoutOn(day(2026, time.March, 11)),
				workoutOn(day(2026, time.March, 12)),
				workoutOn(day(2026, time.March, 12)),
			},
			want: 2,
		},
		{
			name:     "dateless workouts are ignored",
			workouts: []domain.Workout{workoutOn(time.Time{})},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.workouts))
		})
	}
}

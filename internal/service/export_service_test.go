package service

import (
	"context"
	"encoding/json"
	"path"
	"strings"
	"testing"
	"time"

	"fittrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFileStorage records uploads in memory.
type fakeFileStorage struct {
	objects map[string][]byte
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{objects: make(map[string][]byte)}
}

func (s *fakeFileStorage) UploadObject(ctx context.Context, objectKey string, contentType string, body []byte) error {
	s.objects[objectKey] = body
	return nil
}

func (s *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.example.com/" + objectKey + "?signed", nil
}

func (s *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}

func TestExportSummary(t *testing.T) {
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	newFixture := func(t *testing.T) (ExportService, *fakeWorkoutRepo, *fakeAchievementRepo, *fakeFileStorage) {
		t.Helper()
		workouts := newFakeWorkoutRepo()
		achievements := newFakeAchievementRepo()
		files := newFakeFileStorage()

		stats, ok := NewStatsService(workouts).(*statsService)
		require.True(t, ok)
		stats.now = func() time.Time { return now }

		svc, ok := NewExportService(stats, workouts, achievements, files).(*exportService)
		require.True(t, ok)
		svc.now = func() time.Time { return now }
		return svc, workouts, achievements, files
	}

	t.Run("uploads the report and returns a download handle", func(t *testing.T) {
		svc, workouts, achievements, files := newFixture(t)
		addStatsWorkout(t, workouts, domain.WorkoutRunning, day(2026, time.March, 12), 30, 300)
		_, err := achievements.Create(ctx, &domain.Achievement{Code: domain.AchievementFirstWorkout, Title: "First Steps"})
		require.NoError(t, err)

		result, err := svc.ExportSummary(ctx)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.ObjectKey, "reports/summary-"))
		assert.True(t, strings.HasSuffix(result.ObjectKey, ".json"))
		assert.Contains(t, result.DownloadURL, result.ObjectKey)

		body, ok := files.objects[result.ObjectKey]
		require.True(t, ok)

		var report SummaryReport
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, now, report.GeneratedAt)
		assert.Equal(t, 1, report.Stats.TotalWorkouts)
		assert.Len(t, report.Recent, 1)
		assert.Len(t, report.Achievements, 1)
	})

	t.Run("caps the embedded workout list", func(t *testing.T) {
		svc, workouts, _, files := newFixture(t)
		for i := 0; i < 15; i++ {
			addStatsWorkout(t, workouts, domain.WorkoutRunning, day(2026, time.March, 12), 30, 300)
		}

		result, err := svc.ExportSummary(ctx)
		require.NoError(t, err)

		var report SummaryReport
		require.NoError(t, json.Unmarshal(files.objects[result.ObjectKey], &report))
		assert.Len(t, report.Recent, recentWorkoutsInReport)
		assert.Equal(t, 15, report.Stats.TotalWorkouts)
	})

	t.Run("empty history yields ErrNothingToExport", func(t *testing.T) {
		svc, _, _, files := newFixture(t)

		_, err := svc.ExportSummary(ctx)
		assert.ErrorIs(t, err, ErrNothingToExport)
		assert.Empty(t, files.objects)
	})
}

func TestDeleteReport(t *testing.T) {
	now := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	newFixture := func(t *testing.T) (ExportService, *fakeWorkoutRepo, *fakeFileStorage) {
		t.Helper()
		workouts := newFakeWorkoutRepo()
		files := newFakeFileStorage()

		stats, ok := NewStatsService(workouts).(*statsService)
		require.True(t, ok)
		stats.now = func() time.Time { return now }

		svc, ok := NewExportService(stats, workouts, newFakeAchievementRepo(), files).(*exportService)
		require.True(t, ok)
		svc.now = func() time.Time { return now }
		return svc, workouts, files
	}

	t.Run("removes an exported report by name", func(t *testing.T) {
		svc, workouts, files := newFixture(t)
		addStatsWorkout(t, workouts, domain.WorkoutRunning, day(2026, time.March, 12), 30, 300)

		result, err := svc.ExportSummary(ctx)
		require.NoError(t, err)
		require.Contains(t, files.objects, result.ObjectKey)

		require.NoError(t, svc.DeleteReport(ctx, path.Base(result.ObjectKey)))
		assert.NotContains(t, files.objects, result.ObjectKey)
	})

	t.Run("rejects names outside the report namespace", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		for _, name := range []string{
			"",
			"notes.txt",
			"summary-abc.txt",
			"../summary-abc.json",
			"reports/summary-abc.json",
		} {
			err := svc.DeleteReport(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidReportName, "name %q", name)
		}
	})
}

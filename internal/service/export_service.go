package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrExportFailed       = errors.New("failed to export summary report")
	ErrExportURLError     = errors.New("failed to generate report download URL")
	ErrNothingToExport    = errors.New("no workouts recorded yet")
	ErrInvalidReportName  = errors.New("invalid report name")
	ErrReportDeleteFailed = errors.New("failed to delete summary report")
)

// recentWorkoutsInReport caps the workout list embedded in a report.
const recentWorkoutsInReport = 10

// SummaryReport is the exported snapshot of the user's tracker state.
type SummaryReport struct {
	GeneratedAt  time.Time            `json:"generatedAt"`
	Stats        SummaryStats         `json:"stats"`
	Recent       []domain.Workout     `json:"recentWorkouts"`
	Achievements []domain.Achievement `json:"achievements"`
}

// ExportResult carries the handle to a stored report.
type ExportResult struct {
	ObjectKey   string `json:"objectKey"`
	DownloadURL string `json:"downloadUrl"`
}

// ExportService builds summary reports and stores them in object
// storage, returning a temporary download URL.
type ExportService interface {
	ExportSummary(ctx context.Context) (*ExportResult, error)

	// DeleteReport removes a previously exported report by its bare
	// file name (the base of ExportResult.ObjectKey).
	DeleteReport(ctx context.Context, name string) error
}

// exportService implements the ExportService interface.
type exportService struct {
	statsService    StatsService
	workoutRepo     repository.WorkoutRepository
	achievementRepo repository.AchievementRepository
	fileStorage     storage.FileStorage
	now             func() time.Time
}

// NewExportService creates a new instance of exportService.
func NewExportService(
	statsService StatsService,
	workoutRepo repository.WorkoutRepository,
	achievementRepo repository.AchievementRepository,
	fileStorage storage.FileStorage,
) ExportService {
	return &exportService{
		statsService:    statsService,
		workoutRepo:     workoutRepo,
		achievementRepo: achievementRepo,
		fileStorage:     fileStorage,
		now:             time.Now,
	}
}

// ExportSummary assembles the report, uploads it under a unique key and
// returns a presigned download URL.
func (s *exportService) ExportSummary(ctx context.Context) (*ExportResult, error) {
	workouts, err := s.workoutRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrNothingToExport
	}

	stats, err := s.statsService.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := s.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	recent := workouts
	if len(recent) > recentWorkoutsInReport {
		recent = recent[:recentWorkoutsInReport]
	}

	report := SummaryReport{
		GeneratedAt:  s.now().UTC(),
		Stats:        *stats,
		Recent:       recent,
		Achievements: achievements,
	}
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, ErrExportFailed
	}

	objectKey := path.Join("reports", fmt.Sprintf("summary-%s.json", uuid.NewString()))
	if err := s.fileStorage.UploadObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, ErrExportFailed
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrExportURLError
	}

	return &ExportResult{
		ObjectKey:   objectKey,
		DownloadURL: downloadURL,
	}, nil
}

// DeleteReport removes a stored report. The name must be a bare
// summary-*.json file name; anything resembling a path is rejected so
// the handler can never delete outside the reports prefix.
func (s *exportService) DeleteReport(ctx context.Context, name string) error {
	if name == "" || name != path.Base(name) ||
		!strings.HasPrefix(name, "summary-") || !strings.HasSuffix(name, ".json") {
		return ErrInvalidReportName
	}

	objectKey := path.Join("reports", name)
	if err := s.fileStorage.DeleteObject(ctx, objectKey); err != nil {
		return ErrReportDeleteFailed
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/alexanderramin/drivetime/internal/engine"
	"github.com/alexanderramin/drivetime/internal/repository"
)

// complianceService loads the timeline and reference point, stamps the
// call instant, and hands everything to the pure engine. It keeps no
// state between calls.
type complianceService struct {
	activities repository.ActivityRepo
	settings   SettingsService
}

func NewComplianceService(activities repository.ActivityRepo, settings SettingsService) ComplianceService {
	return &complianceService{activities: activities, settings: settings}
}

func (s *complianceService) CheckViolations(ctx context.Context) ([]domain.Violation, error) {
	activities, lastWeeklyRestEnd, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	return engine.CheckAllViolations(activities, lastWeeklyRestEnd, time.Now().UTC()), nil
}

func (s *complianceService) Summary(ctx context.Context) (*domain.StatusSummary, error) {
	activities, lastWeeklyRestEnd, err := s.loadInputs(ctx)
	if err != nil {
		return nil, err
	}
	summary := engine.CalculateSummary(activities, lastWeeklyRestEnd, time.Now().UTC())
	return &summary, nil
}

func (s *complianceService) loadInputs(ctx context.Context) ([]domain.Activity, *time.Time, error) {
	stored, err := s.activities.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading activities: %w", err)
	}
	activities := make([]domain.Activity, 0, len(stored))
	for _, a := range stored {
		activities = append(activities, *a)
	}

	lastWeeklyRestEnd, err := s.settings.LastWeeklyRestEnd(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading weekly rest reference: %w", err)
	}
	return activities, lastWeeklyRestEnd, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/alexanderramin/drivetime/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
}

func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

// validateActivity rejects malformed entries at the boundary so the
// engine never sees a closed activity ending before it starts.
func validateActivity(a *domain.Activity) error {
	if !domain.ValidActivityTypes[string(a.Type)] {
		return fmt.Errorf("unknown activity type %q", a.Type)
	}
	if a.Start.IsZero() {
		return errors.New("activity start is required")
	}
	if a.End != nil && a.End.Before(a.Start) {
		return fmt.Errorf("activity end %s is before start %s",
			a.End.Format(time.RFC3339), a.Start.Format(time.RFC3339))
	}
	return nil
}

func (s *activityService) Add(ctx context.Context, a *domain.Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if err := validateActivity(a); err != nil {
		return err
	}
	if a.End == nil {
		if err := s.closeOngoing(ctx, a.Start); err != nil {
			return err
		}
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return fmt.Errorf("adding activity: %w", err)
	}
	return nil
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := validateActivity(a); err != nil {
		return err
	}
	return s.activities.Update(ctx, a)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

func (s *activityService) Start(ctx context.Context, activityType domain.ActivityType) (*domain.Activity, error) {
	now := time.Now().UTC()
	if err := s.closeOngoing(ctx, now); err != nil {
		return nil, err
	}

	a := &domain.Activity{
		ID:    uuid.New().String(),
		Type:  activityType,
		Start: now,
	}
	if err := validateActivity(a); err != nil {
		return nil, err
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("starting activity: %w", err)
	}
	return a, nil
}

func (s *activityService) Stop(ctx context.Context) (*domain.Activity, error) {
	ongoing, err := s.activities.GetOngoing(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errors.New("no activity in progress")
		}
		return nil, err
	}

	end := time.Now().UTC()
	ongoing.End = &end
	if err := s.activities.Update(ctx, ongoing); err != nil {
		return nil, fmt.Errorf("stopping activity: %w", err)
	}
	return ongoing, nil
}

func (s *activityService) Ongoing(ctx context.Context) (*domain.Activity, error) {
	ongoing, err := s.activities.GetOngoing(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ongoing, nil
}

// closeOngoing ends the currently open activity, if any, at the given
// instant. Only one activity may be in progress at a time.
func (s *activityService) closeOngoing(ctx context.Context, at time.Time) error {
	ongoing, err := s.activities.GetOngoing(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	end := at
	if end.Before(ongoing.Start) {
		end = ongoing.Start
	}
	ongoing.End = &end
	if err := s.activities.Update(ctx, ongoing); err != nil {
		return fmt.Errorf("closing previous activity: %w", err)
	}
	return nil
}

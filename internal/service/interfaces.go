package service

import (
	"context"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
)

type ActivityService interface {
	Add(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error

	// Start opens an ongoing activity of the given type, closing any
	// previously ongoing one at the new start instant.
	Start(ctx context.Context, activityType domain.ActivityType) (*domain.Activity, error)
	// Stop closes the ongoing activity at now, if one exists.
	Stop(ctx context.Context) (*domain.Activity, error)
	// Ongoing returns the open activity, or nil when there is none.
	Ongoing(ctx context.Context) (*domain.Activity, error)
}

type SettingsService interface {
	Defaults(ctx context.Context) (domain.Settings, error)
	SaveDefaults(ctx context.Context, s domain.Settings) error

	// LastWeeklyRestEnd is the reference point for all weekly-cycle
	// accounting: the end of the last known qualifying weekly rest
	// before the logged timeline starts. Nil when never set.
	LastWeeklyRestEnd(ctx context.Context) (*time.Time, error)
	SaveLastWeeklyRestEnd(ctx context.Context, t time.Time) error
	ClearLastWeeklyRestEnd(ctx context.Context) error
}

type ComplianceService interface {
	CheckViolations(ctx context.Context) ([]domain.Violation, error)
	Summary(ctx context.Context) (*domain.StatusSummary, error)
}

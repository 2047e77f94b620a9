package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/alexanderramin/drivetime/internal/repository"
)

// Settings store keys. Values are serialized snapshots; the store itself
// is a plain key-value table.
const (
	settingsKeyDefaults          = "defaults"
	settingsKeyLastWeeklyRestEnd = "last_weekly_rest_end"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

// Defaults loads the per-type default durations. A missing or corrupt
// snapshot yields the built-in defaults rather than an error: the engine
// must always be callable with usable inputs.
func (s *settingsService) Defaults(ctx context.Context) (domain.Settings, error) {
	raw, err := s.settings.Get(ctx, settingsKeyDefaults)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, err
	}

	var loaded domain.Settings
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		return domain.DefaultSettings(), nil
	}

	// Backfill types absent from older snapshots.
	merged := domain.DefaultSettings()
	for activityType, defaults := range loaded {
		merged[activityType] = defaults
	}
	return merged, nil
}

func (s *settingsService) SaveDefaults(ctx context.Context, settings domain.Settings) error {
	for activityType, defaults := range settings {
		if !domain.ValidActivityTypes[string(activityType)] {
			return fmt.Errorf("unknown activity type %q", activityType)
		}
		if defaults.Hours < 0 || defaults.Minutes < 0 || defaults.Minutes > 59 {
			return fmt.Errorf("invalid default duration for %q: %dh %dm",
				activityType, defaults.Hours, defaults.Minutes)
		}
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings snapshot: %w", err)
	}
	return s.settings.Put(ctx, settingsKeyDefaults, string(raw))
}

func (s *settingsService) LastWeeklyRestEnd(ctx context.Context) (*time.Time, error) {
	raw, err := s.settings.Get(ctx, settingsKeyLastWeeklyRestEnd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Corrupt reference: fall back to "never set".
		return nil, nil
	}
	return &t, nil
}

func (s *settingsService) SaveLastWeeklyRestEnd(ctx context.Context, t time.Time) error {
	return s.settings.Put(ctx, settingsKeyLastWeeklyRestEnd, t.UTC().Format(time.RFC3339))
}

func (s *settingsService) ClearLastWeeklyRestEnd(ctx context.Context) error {
	return s.settings.Delete(ctx, settingsKeyLastWeeklyRestEnd)
}

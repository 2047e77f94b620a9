package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drivetime/internal/domain"
	"github.com/spf13/pflag"
)

// activityTypeValue is a pflag.Value that validates activity type flags
// at parse time instead of deep inside a command.
type activityTypeValue struct {
	target *domain.ActivityType
}

var _ pflag.Value = (*activityTypeValue)(nil)

func newActivityTypeValue(target *domain.ActivityType) *activityTypeValue {
	return &activityTypeValue{target: target}
}

func (v *activityTypeValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *activityTypeValue) Set(raw string) error {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !domain.ValidActivityTypes[normalized] {
		return fmt.Errorf("unknown activity type %q (valid: start_work, driving, break, rest, other_work, end_work)", raw)
	}
	*v.target = domain.ActivityType(normalized)
	return nil
}

func (v *activityTypeValue) Type() string {
	return "activity-type"
}

package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"hours and minutes", 4*time.Hour + 30*time.Minute, "4h 30m"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"whole hours", 2 * time.Hour, "2h"},
		{"zero", 0, "0m"},
		{"negative", -(time.Hour + 15*time.Minute), "-1h 15m"},
		{"rounds seconds", 29 * time.Second, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.input))
		})
	}
}

func TestLongDuration(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"with days", 28*time.Hour + 30*time.Minute, "1d 4h 30m"},
		{"under a day", 20 * time.Hour, "20h"},
		{"negative days", -30 * time.Hour, "-1d 6h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongDuration(tt.input))
		})
	}
}

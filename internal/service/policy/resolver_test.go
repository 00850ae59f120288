package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	domain "github.com/tempohq/tempo-backend-go/internal/domain/policy"
)

func strPtr(s string) *string { return &s }

func TestResolveTimings_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		raw        *domain.WorkPolicy
		wantOnsite Clock
		wantRemote Clock
	}{
		{
			name:       "nil policy",
			raw:        nil,
			wantOnsite: Clock{9, 0},
			wantRemote: Clock{8, 0},
		},
		{
			name:       "empty policy",
			raw:        &domain.WorkPolicy{},
			wantOnsite: Clock{9, 0},
			wantRemote: Clock{8, 0},
		},
		{
			name: "fully configured",
			raw: &domain.WorkPolicy{
				OnsiteStart: strPtr("10:30"),
				RemoteStart: strPtr("07:15"),
			},
			wantOnsite: Clock{10, 30},
			wantRemote: Clock{7, 15},
		},
		{
			name: "partially configured",
			raw: &domain.WorkPolicy{
				OnsiteStart: strPtr("08:45"),
			},
			wantOnsite: Clock{8, 45},
			wantRemote: Clock{8, 0},
		},
		{
			name: "malformed values fall back silently",
			raw: &domain.WorkPolicy{
				OnsiteStart: strPtr("25:99"),
				RemoteStart: strPtr("soonish"),
			},
			wantOnsite: Clock{9, 0},
			wantRemote: Clock{8, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTimings(tt.raw)
			assert.Equal(t, tt.wantOnsite, got.OnsiteStart)
			assert.Equal(t, tt.wantRemote, got.RemoteStart)
		})
	}
}

func TestResolveWeekSchedule(t *testing.T) {
	tests := []struct {
		name        string
		raw         *domain.WorkPolicy
		wantWorking []string
		wantWeekend []string
	}{
		{
			name:        "nil policy uses defaults",
			raw:         nil,
			wantWorking: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
			wantWeekend: []string{"SATURDAY", "SUNDAY"},
		},
		{
			name: "working day wins overlap",
			raw: &domain.WorkPolicy{
				WorkingDays: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"},
				WeekendDays: []string{"SATURDAY", "SUNDAY"},
			},
			wantWorking: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"},
			wantWeekend: []string{"SUNDAY"},
		},
		{
			name: "dedupe and canonical order",
			raw: &domain.WorkPolicy{
				WorkingDays: []string{"friday", "Monday", "FRIDAY", " tuesday "},
				WeekendDays: []string{"SUNDAY", "SATURDAY"},
			},
			wantWorking: []string{"MONDAY", "TUESDAY", "FRIDAY"},
			wantWeekend: []string{"SATURDAY", "SUNDAY"},
		},
		{
			name: "unknown symbols dropped",
			raw: &domain.WorkPolicy{
				WorkingDays: []string{"MONDAY", "FUNDAY"},
				WeekendDays: []string{"SUNDAY"},
			},
			wantWorking: []string{"MONDAY"},
			wantWeekend: []string{"SUNDAY"},
		},
		{
			name: "weekend swallowed entirely by working days falls back to defaults",
			raw: &domain.WorkPolicy{
				WorkingDays: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"},
				WeekendDays: []string{"SATURDAY", "SUNDAY"},
			},
			wantWorking: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
			wantWeekend: []string{"SATURDAY", "SUNDAY"},
		},
		{
			name: "empty working days falls back to defaults",
			raw: &domain.WorkPolicy{
				WeekendDays: []string{"FRIDAY"},
			},
			wantWorking: []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
			wantWeekend: []string{"SATURDAY", "SUNDAY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWeekSchedule(tt.raw)
			assert.Equal(t, tt.wantWorking, got.WorkingDays)
			assert.Equal(t, tt.wantWeekend, got.WeekendDays)

			// Sets must always be disjoint.
			for _, w := range got.WorkingDays {
				assert.NotContains(t, got.WeekendDays, w)
			}
		})
	}
}

func TestWeekSchedule_IsWorkingDay(t *testing.T) {
	week := ResolveWeekSchedule(nil)

	monday := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)

	assert.True(t, week.IsWorkingDay(monday))
	assert.False(t, week.IsWorkingDay(saturday))
}

func TestParseClock(t *testing.T) {
	c, ok := ParseClock("09:05")
	assert.True(t, ok)
	assert.Equal(t, Clock{9, 5}, c)
	assert.Equal(t, "09:05", c.String())

	_, ok = ParseClock("9am")
	assert.False(t, ok)
}

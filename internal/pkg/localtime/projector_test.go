package localtime

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempohq/tempo-backend-go/internal/pkg/timezone"
)

func newProjector() *Projector {
	return NewProjector(timezone.NewResolver())
}

func TestProjectToInstant_RoundTrip(t *testing.T) {
	p := newProjector()

	tests := []struct {
		zone string
		day  time.Time
		hour int
		min  int
	}{
		{"Asia/Jakarta", time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), 9, 0},
		{"Asia/Dhaka", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), 8, 30},
		{"UTC", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0, 0},
		{"America/New_York", time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), 17, 45},
		{"Europe/London", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), 23, 59},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%02d:%02d", tt.zone, tt.hour, tt.min), func(t *testing.T) {
			instant := p.ProjectToInstant(tt.day, tt.hour, tt.min, tt.zone)

			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)
			local := instant.In(loc)

			assert.Equal(t, tt.hour, local.Hour())
			assert.Equal(t, tt.min, local.Minute())
			assert.Equal(t, tt.day.Day(), local.Day())
		})
	}
}

func TestProjectToInstant_DSTTransitionDay(t *testing.T) {
	p := newProjector()

	// US spring-forward date: clocks jump 02:00 EST -> 03:00 EDT.
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A wall clock after the gap round-trips exactly.
	morning := p.ProjectToInstant(day, 8, 0, "America/New_York")
	assert.Equal(t, 8, morning.In(loc).Hour())
	assert.Equal(t, 0, morning.In(loc).Minute())

	// A wall clock before the gap uses the pre-transition offset.
	early := p.ProjectToInstant(day, 1, 30, "America/New_York")
	assert.Equal(t, 1, early.In(loc).Hour())
	assert.Equal(t, 30, early.In(loc).Minute())

	// The two instants are separated by the correct absolute duration:
	// 01:30 EST to 08:00 EDT is 5h30m of real time, not 6h30m.
	assert.Equal(t, 5*time.Hour+30*time.Minute, morning.Sub(early))
}

func TestProjectToInstant_NaiveFallback(t *testing.T) {
	p := newProjector()
	day := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	got := p.ProjectToInstant(day, 9, 15, "")
	assert.Equal(t, time.Date(2025, 5, 20, 9, 15, 0, 0, time.UTC), got)

	// Unresolvable zone degrades the same way instead of failing.
	got = p.ProjectToInstant(day, 9, 15, "Nowhere/Invalid")
	assert.Equal(t, time.Date(2025, 5, 20, 9, 15, 0, 0, time.UTC), got)
}

func TestDayIn(t *testing.T) {
	p := newProjector()

	// 2025-03-17 23:30 UTC is already 2025-03-18 in Jakarta (UTC+7).
	instant := time.Date(2025, 3, 17, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), p.DayIn(instant, "Asia/Jakarta"))
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), p.DayIn(instant, "UTC"))
}

func TestMinutesIntoDay(t *testing.T) {
	p := newProjector()

	// 02:05 UTC is 09:05 in Jakarta.
	instant := time.Date(2025, 3, 17, 2, 5, 0, 0, time.UTC)
	assert.Equal(t, 9*60+5, p.MinutesIntoDay(instant, "Asia/Jakarta"))
	assert.Equal(t, 2*60+5, p.MinutesIntoDay(instant, "UTC"))
}

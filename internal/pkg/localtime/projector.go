// Package localtime converts wall-clock times on a calendar day into
// absolute instants, independent of the host's default zone.
package localtime

import (
	"time"

	"github.com/tempohq/tempo-backend-go/internal/pkg/timezone"
)

// Projector projects local wall-clock times into instants. Zone lookups go
// through the shared timezone.Resolver, which caches loaded locations.
type Projector struct {
	zones *timezone.Resolver
}

func NewProjector(zones *timezone.Resolver) *Projector {
	return &Projector{zones: zones}
}

// ProjectToInstant returns the absolute instant of hour:minute on day's
// calendar date in the named zone.
//
// The offset of the target zone is measured at a candidate instant and the
// candidate re-derived once if the measurement changes, which handles wall
// clocks that fall next to a DST transition without a transition table. An
// empty or unresolvable zone degrades to naive arithmetic in day's own
// location.
func (p *Projector) ProjectToInstant(day time.Time, hour, minute int, zone string) time.Time {
	var loc *time.Location
	if zone != "" {
		loc = p.zones.Location(zone)
	}
	if loc == nil {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	}

	naive := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

	_, offset := naive.In(loc).Zone()
	candidate := naive.Add(-time.Duration(offset) * time.Second)

	// The candidate may have crossed a transition boundary; re-measure and
	// recompute once with the corrected offset.
	if _, verified := candidate.In(loc).Zone(); verified != offset {
		candidate = naive.Add(-time.Duration(verified) * time.Second)
	}

	return candidate
}

// DayIn returns the midnight-anchored calendar date of t in the named zone,
// normalized to UTC for storage in a DATE column. Falls back to t's own
// location when the zone does not resolve.
func (p *Projector) DayIn(t time.Time, zone string) time.Time {
	local := t
	if zone != "" {
		if loc := p.zones.Location(zone); loc != nil {
			local = t.In(loc)
		}
	}
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// MinutesIntoDay returns how many minutes past local midnight t falls in the
// named zone, using t's own location when the zone does not resolve.
func (p *Projector) MinutesIntoDay(t time.Time, zone string) int {
	local := t
	if zone != "" {
		if loc := p.zones.Location(zone); loc != nil {
			local = t.In(loc)
		}
	}
	return local.Hour()*60 + local.Minute()
}

package attendance

import (
	"strings"
	"time"

	"github.com/tempohq/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohq/tempo-backend-go/internal/pkg/localtime"
	policyResolver "github.com/tempohq/tempo-backend-go/internal/service/policy"
)

// LatenessTolerance is the grace window after scheduled start before a
// check-in is classified LATE. A check-in exactly at the boundary is still
// on time.
const LatenessTolerance = 10 * time.Minute

// maxWorkSeconds caps the caller-supplied worked duration at check-out.
const maxWorkSeconds = 8 * 60 * 60

// Classifier computes scheduled start instants and classifies check-ins.
// It is pure computation; all inputs come from the caller.
type Classifier struct {
	projector *localtime.Projector
}

func NewClassifier(projector *localtime.Projector) *Classifier {
	return &Classifier{projector: projector}
}

// ScheduledStart computes the instant the employee is expected to begin work
// on date, given the resolved policy timings, the work type, and the
// resolved zone ("" degrades to naive arithmetic).
func (c *Classifier) ScheduledStart(date time.Time, workType string, timings policyResolver.Timings, zone string) time.Time {
	start := timings.OnsiteStart
	if workType == attendance.WorkTypeRemote {
		start = timings.RemoteStart
	}
	return c.projector.ProjectToInstant(date, start.Hour, start.Minute, zone)
}

// ClassifyCheckIn derives the record status from the check-in instant and
// the scheduled start. Checking in before or up to the tolerance after the
// scheduled start is on time; on-time remote work classifies REMOTE.
func (c *Classifier) ClassifyCheckIn(checkInAt, scheduledStart time.Time, workType string) string {
	if checkInAt.After(scheduledStart.Add(LatenessTolerance)) {
		return attendance.StatusLate
	}
	if workType == attendance.WorkTypeRemote {
		return attendance.StatusRemote
	}
	return attendance.StatusPresent
}

// ClampWorkSeconds bounds a caller-supplied worked duration to [0, 8h].
// Break seconds are deliberately not clamped.
func ClampWorkSeconds(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > maxWorkSeconds {
		return maxWorkSeconds
	}
	return seconds
}

// InferWorkType settles the remote/onsite question for records that lack an
// explicit work type. Order: explicit work type, then a "remote" token in
// the stored location label, then the profile work model, defaulting to
// onsite.
func InferWorkType(explicit string, location *string, workModel *string) string {
	switch explicit {
	case attendance.WorkTypeOnsite, attendance.WorkTypeRemote:
		return explicit
	}
	if location != nil && strings.Contains(strings.ToLower(*location), "remote") {
		return attendance.WorkTypeRemote
	}
	if workModel != nil && strings.EqualFold(*workModel, attendance.WorkTypeRemote) {
		return attendance.WorkTypeRemote
	}
	return attendance.WorkTypeOnsite
}

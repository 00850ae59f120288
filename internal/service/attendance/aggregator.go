package attendance

import (
	"time"

	"github.com/tempohq/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohq/tempo-backend-go/internal/pkg/localtime"
	policyResolver "github.com/tempohq/tempo-backend-go/internal/service/policy"
)

// Calendar signals, weakest to strongest.
const (
	SignalNone   = "none"
	SignalOnTime = "ontime"
	SignalLeave  = "leave"
	SignalLate   = "late"
	SignalAbsent = "absent"
)

// signalRank orders calendar signals for precedence resolution:
// absent > late > leave > ontime > none.
var signalRank = map[string]int{
	SignalNone:   0,
	SignalOnTime: 1,
	SignalLeave:  2,
	SignalLate:   3,
	SignalAbsent: 4,
}

// presentStatuses are the statuses counting as "showed up" in trend points
// and days-worked totals.
var presentStatuses = map[string]bool{
	attendance.StatusPresent: true,
	attendance.StatusLate:    true,
	attendance.StatusRemote:  true,
	attendance.StatusHalfDay: true,
}

// Aggregator folds classified records into histograms, calendars, trends
// and summaries. Pure computation over caller-supplied inputs.
type Aggregator struct {
	projector *localtime.Projector
}

func NewAggregator(projector *localtime.Projector) *Aggregator {
	return &Aggregator{projector: projector}
}

// StatusHistogram counts records per status.
func (a *Aggregator) StatusHistogram(records []attendance.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Status]++
	}
	return counts
}

// statusSignal maps a persisted status onto its calendar signal.
func statusSignal(status string) string {
	switch status {
	case attendance.StatusAbsent:
		return SignalAbsent
	case attendance.StatusLate:
		return SignalLate
	case attendance.StatusHoliday:
		return SignalLeave
	case attendance.StatusPresent, attendance.StatusRemote, attendance.StatusHalfDay:
		return SignalOnTime
	default:
		return SignalNone
	}
}

// BuildCalendar derives one signal per day in [monthStart, monthEnd]. When a
// day has several statuses the strongest signal wins. Working days strictly
// before today (in the resolved zone) with no record at all render absent;
// weekend days and future days render none. Absence here is inferred at
// aggregation time only, never written back.
func (a *Aggregator) BuildCalendar(monthStart, monthEnd time.Time, records []attendance.Record, week policyResolver.WeekSchedule, zone string, now time.Time) []attendance.CalendarDay {
	byDay := make(map[string]string)
	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		signal := statusSignal(rec.Status)
		if signalRank[signal] > signalRank[byDay[key]] {
			byDay[key] = signal
		}
	}

	today := a.projector.DayIn(now, zone)

	var days []attendance.CalendarDay
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		signal, ok := byDay[key]
		if !ok || signal == "" {
			signal = SignalNone
			if d.Before(today) && week.IsWorkingDay(d) {
				signal = SignalAbsent
			}
		}
		days = append(days, attendance.CalendarDay{Date: key, Signal: signal})
	}
	return days
}

// BuildWeeklyTrend produces one point per day in the window starting at
// windowStart. PresentCount tallies records whose status counts as showed
// up; the percentage is taken against totalEmployees, reporting 0 when the
// headcount is zero.
func (a *Aggregator) BuildWeeklyTrend(windowStart time.Time, days int, records []attendance.Record, totalEmployees int) []attendance.TrendPoint {
	presentByDay := make(map[string]int)
	for _, rec := range records {
		if presentStatuses[rec.Status] {
			presentByDay[rec.Date.Format("2006-01-02")]++
		}
	}

	points := make([]attendance.TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		key := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		present := presentByDay[key]

		var percentage float64
		if totalEmployees > 0 {
			percentage = float64(present) / float64(totalEmployees) * 100
		}

		points = append(points, attendance.TrendPoint{
			Date:              key,
			PresentCount:      present,
			PresentPercentage: percentage,
		})
	}
	return points
}

// MonthlySummary aggregates one employee's records for the month beginning
// at monthStart. Averages are computed only over records carrying the value
// so partial data does not skew toward zero.
func (a *Aggregator) MonthlySummary(records []attendance.Record, monthStart time.Time, zone string) attendance.MonthlySummary {
	summary := attendance.MonthlySummary{
		TotalRecords: len(records),
		StatusCounts: a.StatusHistogram(records),
	}

	var checkInMinutesTotal, checkInCount int
	var workSecondsTotal, workCount int

	for _, rec := range records {
		if presentStatuses[rec.Status] {
			summary.DaysWorked++
		}
		if rec.Status == attendance.StatusPresent || rec.Status == attendance.StatusRemote {
			summary.OnTimeCount++
		}
		if rec.CheckInAt != nil {
			checkInMinutesTotal += a.projector.MinutesIntoDay(*rec.CheckInAt, zone)
			checkInCount++
		}
		if rec.WorkSeconds != nil {
			workSecondsTotal += *rec.WorkSeconds
			workCount++
		}
	}

	if checkInCount > 0 {
		avg := checkInMinutesTotal / checkInCount
		summary.AverageCheckInMinutes = &avg
	}
	if workCount > 0 {
		avg := workSecondsTotal / workCount
		summary.AverageWorkSeconds = &avg
	}
	return summary
}

package attendance

import (
	"github.com/tempohq/tempo-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	WorkType string `json:"work_type"` // ONSITE or REMOTE
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	} else if !validator.IsInSlice(r.WorkType, []string{WorkTypeOnsite, WorkTypeRemote}) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be ONSITE or REMOTE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckOutRequest carries the caller-measured durations. WorkSeconds is
// clamped to [0, 8h] by the service; BreakSeconds is stored as supplied.
type CheckOutRequest struct {
	WorkSeconds  int `json:"work_seconds"`
	BreakSeconds int `json:"break_seconds"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakSeconds < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_seconds",
			Message: "break_seconds must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualEntryRequest is the HR console upsert. CheckIn/CheckOut are
// wall-clock "HH:MM" strings in the employee's resolved zone. Status, when
// set, must be ABSENT or HOLIDAY and bypasses time-based classification.
type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	WorkType   string  `json:"work_type"`
	Status     *string `json:"status,omitempty"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be a wall-clock time in HH:MM format",
		})
	}
	if r.CheckOut != nil && *r.CheckOut != "" && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be a wall-clock time in HH:MM format",
		})
	}

	if !validator.IsEmpty(r.WorkType) && !validator.IsInSlice(r.WorkType, []string{WorkTypeOnsite, WorkTypeRemote}) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be ONSITE or REMOTE",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusAbsent, StatusHoliday}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "explicit status must be ABSENT or HOLIDAY",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckInAt    *string `json:"check_in_at,omitempty"`
	CheckOutAt   *string `json:"check_out_at,omitempty"`
	Status       string  `json:"status"`
	WorkSeconds  *int    `json:"work_seconds,omitempty"`
	BreakSeconds *int    `json:"break_seconds,omitempty"`
	Source       string  `json:"source"`
	Location     *string `json:"location,omitempty"`
}

// CalendarDay is one month-view cell. Signal is one of none, ontime, late,
// absent, leave.
type CalendarDay struct {
	Date   string `json:"date"`
	Signal string `json:"signal"`
}

// TrendPoint is one day in the weekly presence trend.
type TrendPoint struct {
	Date              string  `json:"date"`
	PresentCount      int     `json:"present_count"`
	PresentPercentage float64 `json:"present_percentage"`
}

// DayOverviewResponse is the HR console aggregate for a single date.
type DayOverviewResponse struct {
	Date         string           `json:"date"`
	Logs         []RecordResponse `json:"logs"`
	StatusCounts map[string]int   `json:"status_counts"`
	Calendar     []CalendarDay    `json:"calendar"`
	WeeklyTrend  []TrendPoint     `json:"weekly_trend"`
}

type HistoryRow struct {
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   string  `json:"status"`
	Source   string  `json:"source"`
}

// MonthlySummary aggregates one employee's month. Averages are computed
// only over records that carry the underlying value.
type MonthlySummary struct {
	TotalRecords          int            `json:"total_records"`
	DaysWorked            int            `json:"days_worked"`
	OnTimeCount           int            `json:"on_time_count"`
	StatusCounts          map[string]int `json:"status_counts"`
	AverageCheckInMinutes *int           `json:"average_check_in_minutes,omitempty"`
	AverageWorkSeconds    *int           `json:"average_work_seconds,omitempty"`
}

type HistoryResponse struct {
	Month   int            `json:"month"`
	Year    int            `json:"year"`
	Rows    []HistoryRow   `json:"rows"`
	Summary MonthlySummary `json:"summary"`
}

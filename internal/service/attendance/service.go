package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/tempohq/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohq/tempo-backend-go/internal/domain/employee"
	"github.com/tempohq/tempo-backend-go/internal/domain/organization"
	"github.com/tempohq/tempo-backend-go/internal/domain/policy"
	"github.com/tempohq/tempo-backend-go/internal/pkg/localtime"
	"github.com/tempohq/tempo-backend-go/internal/pkg/timezone"
	policyResolver "github.com/tempohq/tempo-backend-go/internal/service/policy"
)

type TimekeepingServiceImpl struct {
	attendance.Repository
	directory     employee.DirectoryRepository
	organizations organization.OrganizationRepository
	policies      policy.PolicyRepository
	zones         *timezone.Resolver
	projector     *localtime.Projector
	classifier    *Classifier
	aggregator    *Aggregator

	now func() time.Time
}

func NewTimekeepingService(
	repo attendance.Repository,
	directory employee.DirectoryRepository,
	organizations organization.OrganizationRepository,
	policies policy.PolicyRepository,
	zones *timezone.Resolver,
) attendance.TimekeepingService {
	projector := localtime.NewProjector(zones)
	return &TimekeepingServiceImpl{
		Repository:    repo,
		directory:     directory,
		organizations: organizations,
		policies:      policies,
		zones:         zones,
		projector:     projector,
		classifier:    NewClassifier(projector),
		aggregator:    NewAggregator(projector),
		now:           time.Now,
	}
}

// claimsFromContext extracts employee_id and organization_id from JWT claims.
func claimsFromContext(ctx context.Context) (employeeID, organizationID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id not found in claims")
	}
	organizationID, ok = claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", "", fmt.Errorf("organization_id not found in claims")
	}
	return employeeID, organizationID, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// resolveEmployeeZone loads the employee and its organization and settles
// which zone the employee's wall-clock times live in.
func (s *TimekeepingServiceImpl) resolveEmployeeZone(ctx context.Context, employeeID, organizationID string) (employee.Employee, string, error) {
	emp, err := s.directory.GetByID(ctx, employeeID, organizationID)
	if err != nil {
		return employee.Employee{}, "", err
	}

	org, err := s.organizations.GetByID(ctx, organizationID)
	if err != nil {
		return employee.Employee{}, "", err
	}

	zone := s.zones.ResolveForEmployee(derefString(emp.PrimaryLocation), derefString(org.Timezone))
	return emp, zone, nil
}

// loadPolicy returns the stored policy or nil when the organization never
// configured one. Resolution falls back to defaults on nil.
func (s *TimekeepingServiceImpl) loadPolicy(ctx context.Context, organizationID string) (*policy.WorkPolicy, error) {
	raw, err := s.policies.GetByOrganization(ctx, organizationID)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &raw, nil
}

func (s *TimekeepingServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, organizationID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, zone, err := s.resolveEmployeeZone(ctx, employeeID, organizationID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rawPolicy, err := s.loadPolicy(ctx, organizationID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	timings := policyResolver.ResolveTimings(rawPolicy)

	now := s.now()
	date := s.projector.DayIn(now, zone)
	workType := InferWorkType(req.WorkType, nil, emp.WorkModel)

	scheduledStart := s.classifier.ScheduledStart(date, workType, timings, zone)
	status := s.classifier.ClassifyCheckIn(now, scheduledStart, workType)

	rec := attendance.Record{
		EmployeeID:     employeeID,
		OrganizationID: organizationID,
		Date:           date,
		CheckInAt:      &now,
		Status:         status,
		Source:         attendance.SourceSystem,
		Location:       &workType,
	}

	created, err := s.Repository.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return mapRecordToResponse(created), nil
}

func (s *TimekeepingServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, organizationID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	_, zone, err := s.resolveEmployeeZone(ctx, employeeID, organizationID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	date := s.projector.DayIn(now, zone)

	rec, err := s.Repository.GetByEmployeeAndDate(ctx, employeeID, date, organizationID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOutAt != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	workSeconds := ClampWorkSeconds(req.WorkSeconds)
	breakSeconds := req.BreakSeconds

	rec.CheckOutAt = &now
	rec.WorkSeconds = &workSeconds
	rec.BreakSeconds = &breakSeconds

	if err := s.Repository.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	return mapRecordToResponse(*rec), nil
}

func (s *TimekeepingServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	_, organizationID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, zone, err := s.resolveEmployeeZone(ctx, req.EmployeeID, organizationID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rawPolicy, err := s.loadPolicy(ctx, organizationID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	timings := policyResolver.ResolveTimings(rawPolicy)

	date, _ := time.Parse("2006-01-02", req.Date)
	workType := InferWorkType(req.WorkType, nil, emp.WorkModel)

	checkInAt := s.projectClock(req.CheckIn, date, zone)
	checkOutAt := s.projectClock(req.CheckOut, date, zone)

	rec := attendance.Record{
		EmployeeID:     req.EmployeeID,
		OrganizationID: organizationID,
		Date:           date,
		CheckInAt:      checkInAt,
		CheckOutAt:     checkOutAt,
		Source:         attendance.SourceManual,
		Location:       &workType,
	}

	switch {
	case req.Status != nil:
		// Explicit ABSENT or HOLIDAY bypasses time-based classification.
		rec.Status = *req.Status
	case checkInAt != nil:
		scheduledStart := s.classifier.ScheduledStart(date, workType, timings, zone)
		rec.Status = s.classifier.ClassifyCheckIn(*checkInAt, scheduledStart, workType)
	case checkOutAt != nil:
		// Check-out without a check-in still counts as worked; the worked
		// duration is unknowable, so it stays unset.
		rec.Status = attendance.StatusPresent
	default:
		rec.Status = attendance.StatusAbsent
	}

	if checkInAt != nil && checkOutAt != nil && checkOutAt.After(*checkInAt) {
		worked := ClampWorkSeconds(int(checkOutAt.Sub(*checkInAt).Seconds()))
		rec.WorkSeconds = &worked
	}

	saved, err := s.Repository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return mapRecordToResponse(saved), nil
}

// projectClock turns an optional wall-clock "HH:MM" into an instant on date
// in zone. Nil or malformed input yields nil.
func (s *TimekeepingServiceImpl) projectClock(raw *string, date time.Time, zone string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	clock, ok := policyResolver.ParseClock(*raw)
	if !ok {
		return nil
	}
	instant := s.projector.ProjectToInstant(date, clock.Hour, clock.Minute, zone)
	return &instant
}

func (s *TimekeepingServiceImpl) DayOverview(ctx context.Context, date string) (attendance.DayOverviewResponse, error) {
	_, organizationID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.DayOverviewResponse{}, err
	}

	org, err := s.organizations.GetByID(ctx, organizationID)
	if err != nil {
		return attendance.DayOverviewResponse{}, err
	}
	zone := s.zones.ResolveForEmployee("", derefString(org.Timezone))

	now := s.now()
	day := s.projector.DayIn(now, zone)
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return attendance.DayOverviewResponse{}, fmt.Errorf("invalid date %q: %w", date, err)
		}
		day = parsed
	}

	rawPolicy, err := s.loadPolicy(ctx, organizationID)
	if err != nil {
		return attendance.DayOverviewResponse{}, err
	}
	week := policyResolver.ResolveWeekSchedule(rawPolicy)

	monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	windowStart := day.AddDate(0, 0, -6)

	var (
		dayRecords   []attendance.Record
		monthRecords []attendance.Record
		trendRecords []attendance.Record
		headcount    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dayRecords, err = s.Repository.FindRangeByOrganization(gctx, organizationID, day, day)
		return err
	})
	g.Go(func() error {
		var err error
		monthRecords, err = s.Repository.FindRangeByOrganization(gctx, organizationID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		trendRecords, err = s.Repository.FindRangeByOrganization(gctx, organizationID, windowStart, day)
		return err
	})
	g.Go(func() error {
		var err error
		headcount, err = s.directory.CountActiveByOrganization(gctx, organizationID)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.DayOverviewResponse{}, err
	}

	logs := make([]attendance.RecordResponse, 0, len(dayRecords))
	for _, rec := range dayRecords {
		logs = append(logs, mapRecordToResponse(rec))
	}

	return attendance.DayOverviewResponse{
		Date:         day.Format("2006-01-02"),
		Logs:         logs,
		StatusCounts: s.aggregator.StatusHistogram(dayRecords),
		Calendar:     s.aggregator.BuildCalendar(monthStart, monthEnd, monthRecords, week, zone, now),
		WeeklyTrend:  s.aggregator.BuildWeeklyTrend(windowStart, 7, trendRecords, headcount),
	}, nil
}

func (s *TimekeepingServiceImpl) History(ctx context.Context, month, year int) (attendance.HistoryResponse, error) {
	employeeID, organizationID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	_, zone, err := s.resolveEmployeeZone(ctx, employeeID, organizationID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	now := s.now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	records, err := s.Repository.FindRangeByEmployee(ctx, employeeID, monthStart, monthEnd, organizationID)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	rows := make([]attendance.HistoryRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, attendance.HistoryRow{
			Date:     rec.Date.Format("2006-01-02"),
			CheckIn:  formatInstant(rec.CheckInAt),
			CheckOut: formatInstant(rec.CheckOutAt),
			Status:   rec.Status,
			Source:   rec.Source,
		})
	}

	return attendance.HistoryResponse{
		Month:   month,
		Year:    year,
		Rows:    rows,
		Summary: s.aggregator.MonthlySummary(records, monthStart, zone),
	}, nil
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date.Format("2006-01-02"),
		CheckInAt:    formatInstant(rec.CheckInAt),
		CheckOutAt:   formatInstant(rec.CheckOutAt),
		Status:       rec.Status,
		WorkSeconds:  rec.WorkSeconds,
		BreakSeconds: rec.BreakSeconds,
		Source:       rec.Source,
		Location:     rec.Location,
	}
}

package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/tempohq/tempo-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
}

func NewAttendanceJobs(attendanceRepo attendance.Repository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_attendance_records", 1*time.Hour, j.CloseStaleRecords)
}

// CloseStaleRecords stamps an end-of-day check-out on open records from
// previous days. Same-day open records are left alone; the employee may
// still check out. Runs only in the midnight UTC hour so every zone has had
// its end of day.
func (j *AttendanceJobs) CloseStaleRecords(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: closing stale attendance records")

	cutoff := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	closed, err := j.attendanceRepo.CloseStaleOpen(ctx, cutoff)
	if err != nil {
		slog.Error("Cron: failed to close stale attendance records", "error", err)
		return err
	}

	if closed > 0 {
		slog.Info("Cron: stale attendance records closed", "count", closed)
	}
	return nil
}

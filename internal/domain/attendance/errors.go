package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("attendance already recorded today")
	ErrNotCheckedIn      = errors.New("no open check-in found for today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)

package attendance

import "errors"

// Attendance domain errors
var (
	// Entry errors
	ErrAlreadyCheckedIn      = errors.New("employee already has an open entry for today")
	ErrAlreadyCompletedToday = errors.New("employee already completed attendance today")

	// Exit errors
	ErrNoOpenEntry = errors.New("no open entry for today")

	// Scan errors
	ErrDuplicateScan = errors.New("scan ignored: badge was scanned moments ago")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)

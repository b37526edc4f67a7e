package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ActionEntry = "entry"
	ActionExit  = "exit"
)

// ActivityRecord is a raw recent-activity row as read from storage.
type ActivityRecord struct {
	EmployeeName string
	Date         time.Time
	EntryTime    *time.Time
	ExitTime     *time.Time
	ActionType   string
}

// ActivityItem is one row of the recent-activity feed: the latest scans
// of the day, newest first, times rendered in the business timezone.
type ActivityItem struct {
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	EntryTime    *string `json:"entry_time"`
	ExitTime     *string `json:"exit_time"`
	ActionType   string  `json:"action_type"`
}

// WeeklySummary covers the rolling seven days ending today.
type WeeklySummary struct {
	Employees  int
	TotalHours decimal.Decimal
}

type StatsResponse struct {
	TotalEmployees  int             `json:"total_employees"`
	TodayAttendance int             `json:"today_attendance"`
	PendingExits    int             `json:"pending_exits"`
	WeeklyHours     decimal.Decimal `json:"weekly_hours"`
	WeeklyEmployees int             `json:"weekly_employees"`
	RecentActivity  []ActivityItem  `json:"recent_activity"`
	LastUpdated     time.Time       `json:"last_updated"`
}

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/tabacalera-hn/asistencia-backend-go/internal/domain/dashboard"
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/clock"
)

const recentActivityLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	clock clock.Clock
}

func NewDashboardService(dashboardRepository dashboard.DashboardRepository, businessClock clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepository,
		clock:               businessClock,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := s.clock.Now()
	today := clock.CivilDate(now)

	totalEmployees, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	todayAttendance, err := s.DashboardRepository.CountAttendance(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	pendingExits, err := s.DashboardRepository.CountPendingExits(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count pending exits: %w", err)
	}

	week, err := s.DashboardRepository.WeekSummary(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to summarize week: %w", err)
	}

	activity, err := s.DashboardRepository.RecentActivity(ctx, today, recentActivityLimit)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to list recent activity: %w", err)
	}

	items := make([]dashboard.ActivityItem, 0, len(activity))
	for _, rec := range activity {
		items = append(items, dashboard.ActivityItem{
			EmployeeName: rec.EmployeeName,
			Date:         clock.DateString(rec.Date),
			EntryTime:    s.formatTime(rec.EntryTime),
			ExitTime:     s.formatTime(rec.ExitTime),
			ActionType:   rec.ActionType,
		})
	}

	return dashboard.StatsResponse{
		TotalEmployees:  totalEmployees,
		TodayAttendance: todayAttendance,
		PendingExits:    pendingExits,
		WeeklyHours:     week.TotalHours.Round(1),
		WeeklyEmployees: week.Employees,
		RecentActivity:  items,
		LastUpdated:     now,
	}, nil
}

func (s *DashboardServiceImpl) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := clock.TimeOfDay(t.In(s.clock.Location()))
	return &formatted
}

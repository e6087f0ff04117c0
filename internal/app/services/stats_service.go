package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Aman-Kr09/OrganicClasses/internal/app/models"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/models/dto"
	"github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/apperrors"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/helpers"
)

// Statistics windows
const (
	DefaultTrendDays   = 30
	MaxTrendDays       = 365
	RecentSummaryDays  = 7
	MonthlyTrendMonths = 6
	WeeklyTrendDays    = 28
	DashboardRecent    = 5
	DashboardSubjects  = 10
	PopularCourseCount = 5

	// ResponseTimeEstimate is the advertised follow-up time
	ResponseTimeEstimate = "< 2 hours"
)

// StatsService defines the interface for statistics operations
type StatsService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardStats, error)
	GetInquiryTrend(ctx context.Context, days int) (*dto.InquiryTrend, error)
	GetCourseInsights(ctx context.Context) (*dto.CourseInsights, error)
	GetCourseSummary(ctx context.Context) (*dto.CourseSummary, error)
	GetInquirySummary(ctx context.Context) (*dto.InquirySummary, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	statsRepo repositories.IStatsRepository
	userRepo  repositories.IUserRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo repositories.IStatsRepository, userRepo repositories.IUserRepository, logger zerolog.Logger) StatsService {
	return &statsServiceImpl{
		statsRepo: statsRepo,
		userRepo:  userRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// percentage returns part/whole*100 rounded to two decimals, 0 when whole is 0
func percentage(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return round(float64(part)/float64(whole)*100, 2)
}

// GetDashboard gathers every dashboard figure concurrently
func (s *statsServiceImpl) GetDashboard(ctx context.Context) (*dto.DashboardStats, error) {
	now := s.now()
	startOfDay := helpers.StartOfDay(now)
	startOfWeek := helpers.StartOfWeek(now)
	startOfMonth := helpers.StartOfMonth(now, 0)
	trendStart := helpers.StartOfMonth(now, -(MonthlyTrendMonths - 1))
	weeklyStart := now.Add(-WeeklyTrendDays * 24 * time.Hour)

	var (
		stats         dto.DashboardStats
		enrolledCount int64
		activeSeats   int64
	)
	overview := &stats.Overview
	inq := &stats.Inquiries

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { overview.TotalInquiries, err = s.statsRepo.CountInquiries(gctx); return })
	g.Go(func() (err error) {
		overview.NewInquiries, err = s.statsRepo.CountInquiriesByStatus(gctx, models.InquiryStatusNew)
		return
	})
	g.Go(func() (err error) { overview.TodayInquiries, err = s.statsRepo.CountInquiriesSince(gctx, startOfDay); return })
	g.Go(func() (err error) { overview.WeekInquiries, err = s.statsRepo.CountInquiriesSince(gctx, startOfWeek); return })
	g.Go(func() (err error) { overview.MonthInquiries, err = s.statsRepo.CountInquiriesSince(gctx, startOfMonth); return })
	g.Go(func() (err error) { overview.TotalCourses, err = s.statsRepo.CountCourses(gctx, false); return })
	g.Go(func() (err error) { overview.ActiveCourses, err = s.statsRepo.CountCourses(gctx, true); return })
	g.Go(func() (err error) { overview.TotalEnrollments, err = s.statsRepo.SumEnrolled(gctx); return })
	g.Go(func() (err error) { overview.TotalUsers, err = s.userRepo.CountActive(gctx); return })
	g.Go(func() (err error) {
		enrolledCount, err = s.statsRepo.CountInquiriesByStatus(gctx, models.InquiryStatusEnrolled)
		return
	})
	g.Go(func() (err error) { activeSeats, err = s.statsRepo.SumActiveCapacity(gctx); return })

	g.Go(func() (err error) { inq.ByStatus, err = s.statsRepo.InquiriesByStatus(gctx); return })
	g.Go(func() (err error) { inq.BySubject, err = s.statsRepo.InquiriesBySubject(gctx, DashboardSubjects); return })
	g.Go(func() (err error) { inq.ByClass, err = s.statsRepo.InquiriesByClass(gctx); return })
	g.Go(func() (err error) { inq.MonthlyTrend, err = s.statsRepo.InquiryMonthlyTrend(gctx, trendStart); return })
	g.Go(func() (err error) { inq.WeeklyTrend, err = s.statsRepo.InquiryWeeklyTrend(gctx, weeklyStart); return })
	g.Go(func() (err error) { inq.Recent, err = s.statsRepo.RecentInquiries(gctx, DashboardRecent); return })
	g.Go(func() (err error) { stats.Courses.ByBatchType, err = s.statsRepo.CourseBatchCapacity(gctx); return })

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to build dashboard statistics")
		return nil, fmt.Errorf("error building dashboard: %w", err)
	}

	overview.ConversionRate = percentage(enrolledCount, overview.TotalInquiries)
	if overview.ActiveCourses > 0 {
		overview.CapacityUtilization = percentage(overview.TotalEnrollments, activeSeats)
	}

	stats.Courses.TotalActive = overview.ActiveCourses
	stats.Courses.TotalEnrollments = overview.TotalEnrollments

	stats.Performance = dto.DashboardPerformance{
		ConversionRate:      overview.ConversionRate,
		EnrollmentRate:      overview.TotalEnrollments,
		CapacityUtilization: overview.CapacityUtilization,
		AvgInquiriesPerDay:  round(float64(overview.TotalInquiries)/30, 1),
		ResponseTime:        ResponseTimeEstimate,
	}

	return &stats, nil
}

// GetInquiryTrend returns the daily inquiry activity of the last days
func (s *statsServiceImpl) GetInquiryTrend(ctx context.Context, days int) (*dto.InquiryTrend, error) {
	if days == 0 {
		days = DefaultTrendDays
	}
	if days < 1 || days > MaxTrendDays {
		return nil, apperrors.NewValidationError(fmt.Sprintf("period must be between 1 and %d days", MaxTrendDays))
	}

	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	daily, err := s.statsRepo.DailyInquiries(ctx, since)
	if err != nil {
		return nil, err
	}

	return &dto.InquiryTrend{
		Period: fmt.Sprintf("%d days", days),
		Days:   days,
		Stats:  daily,
	}, nil
}

// GetCourseInsights returns utilisation and popularity figures for courses
func (s *statsServiceImpl) GetCourseInsights(ctx context.Context) (*dto.CourseInsights, error) {
	var insights dto.CourseInsights

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { insights.ByBatchType, err = s.statsRepo.BatchUtilization(gctx); return })
	g.Go(func() (err error) {
		insights.PopularCourses, err = s.statsRepo.PopularCourses(gctx, PopularCourseCount)
		return
	})
	g.Go(func() (err error) { insights.SubjectPopularity, err = s.statsRepo.SubjectPopularity(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building course statistics: %w", err)
	}

	for i := range insights.ByBatchType {
		insights.ByBatchType[i].AvgUtilization = round(insights.ByBatchType[i].AvgUtilization, 2)
	}
	return &insights, nil
}

// GetCourseSummary returns the course breakdowns
func (s *statsServiceImpl) GetCourseSummary(ctx context.Context) (*dto.CourseSummary, error) {
	var summary dto.CourseSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { summary.ByBatchType, err = s.statsRepo.CoursesByBatchType(gctx); return })
	g.Go(func() (err error) { summary.ByClass, err = s.statsRepo.CoursesByClass(gctx); return })
	g.Go(func() (err error) { summary.BySubject, err = s.statsRepo.CoursesBySubject(gctx); return })
	g.Go(func() (err error) { summary.TotalCourses, err = s.statsRepo.CountCourses(gctx, true); return })
	g.Go(func() (err error) { summary.TotalEnrolled, err = s.statsRepo.SumEnrolled(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building course summary: %w", err)
	}
	return &summary, nil
}

// GetInquirySummary returns the inquiry breakdowns
func (s *statsServiceImpl) GetInquirySummary(ctx context.Context) (*dto.InquirySummary, error) {
	var summary dto.InquirySummary
	recentSince := s.now().Add(-RecentSummaryDays * 24 * time.Hour)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { summary.ByStatus, err = s.statsRepo.InquiriesByStatus(gctx); return })
	g.Go(func() (err error) { summary.ByClass, err = s.statsRepo.InquiriesByClass(gctx); return })
	g.Go(func() (err error) { summary.BySubject, err = s.statsRepo.InquiriesBySubject(gctx, 0); return })
	g.Go(func() (err error) { summary.RecentInquiries, err = s.statsRepo.CountInquiriesSince(gctx, recentSince); return })
	g.Go(func() (err error) { summary.Total, err = s.statsRepo.CountInquiries(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error building inquiry summary: %w", err)
	}
	return &summary, nil
}

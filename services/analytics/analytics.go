package analyticsService

import (
	"context"
	"fmt"
	"sort"
	"time"

	"reachout/models"
	"reachout/repository"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

const (
	recentLimit  = 5
	trendMonths  = 6
	monthPattern = "Jan"
)

type CourseStat struct {
	Name         string `json:"name"`
	Certificates int    `json:"certificates"`
}

type MonthlyTrend struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalCourses          int                  `json:"total_courses"`
	TotalCertificates     int                  `json:"total_certificates"`
	TotalRevenue          decimal.Decimal      `json:"total_revenue"`
	CertificatesThisMonth int                  `json:"certificates_this_month"`
	CertificatesThisYear  int                  `json:"certificates_this_year"`
	StatusBreakdown       map[string]int       `json:"status_breakdown"`
	RecentCertificates    []models.Certificate `json:"recent_certificates"`
	CourseStats           []CourseStat         `json:"course_stats"`
	MonthlyTrends         []MonthlyTrend       `json:"monthly_trends"`
	GeneratedAt           time.Time            `json:"generated_at"`
}

type Service struct {
	courses repository.CourseStore
	certs   repository.CertificateStore
	clock   func() time.Time
}

func NewService(courses repository.CourseStore, certs repository.CertificateStore) *Service {
	return &Service{courses: courses, certs: certs, clock: time.Now}
}

// Stats loads courses and certificates and summarizes them as of now.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	certs, err := s.certs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}

	stats := Compute(courses, certs, s.clock().UTC())
	return &stats, nil
}

// Compute is the pure part of Stats. Revenue is the sum of listed course
// fees, not of payments.
func Compute(courses []models.Course, certs []models.Certificate, at time.Time) Stats {
	stats := Stats{
		TotalCourses:       len(courses),
		TotalCertificates:  len(certs),
		TotalRevenue:       decimal.Zero,
		StatusBreakdown:    make(map[string]int, len(models.CertificateStatuses)),
		RecentCertificates: make([]models.Certificate, 0, recentLimit),
		CourseStats:        make([]CourseStat, 0, len(courses)),
		MonthlyTrends:      make([]MonthlyTrend, 0, trendMonths),
		GeneratedAt:        at,
	}

	for _, status := range models.CertificateStatuses {
		stats.StatusBreakdown[status] = 0
	}

	perCourse := make(map[string]int)
	for _, c := range certs {
		stats.StatusBreakdown[c.Status]++
		perCourse[c.CourseName]++
	}

	for _, course := range courses {
		stats.TotalRevenue = stats.TotalRevenue.Add(course.Fees)
		stats.CourseStats = append(stats.CourseStats, CourseStat{
			Name:         course.Title,
			Certificates: perCourse[course.Title],
		})
	}

	cursor := now.With(at)
	stats.CertificatesThisMonth = countIssued(certs, cursor.BeginningOfMonth(), cursor.EndOfMonth())
	stats.CertificatesThisYear = countIssued(certs, cursor.BeginningOfYear(), cursor.EndOfYear())

	monthStart := cursor.BeginningOfMonth()
	for i := trendMonths - 1; i >= 0; i-- {
		month := now.With(monthStart.AddDate(0, -i, 0))
		stats.MonthlyTrends = append(stats.MonthlyTrends, MonthlyTrend{
			Month: month.Format(monthPattern),
			Year:  month.Year(),
			Count: countIssued(certs, month.BeginningOfMonth(), month.EndOfMonth()),
		})
	}

	recent := make([]models.Certificate, len(certs))
	copy(recent, certs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].IssuedOn().After(recent[j].IssuedOn())
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	stats.RecentCertificates = append(stats.RecentCertificates, recent...)

	return stats
}

func countIssued(certs []models.Certificate, from, to time.Time) int {
	count := 0
	for _, c := range certs {
		issued := c.IssuedOn()
		if !issued.Before(from) && !issued.After(to) {
			count++
		}
	}
	return count
}

package analyticsService

import (
	"context"
	"testing"
	"time"

	"reachout/database/dbtest"
	"reachout/models"
	"reachout/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func fixtures() ([]models.Course, []models.Certificate) {
	courses := []models.Course{
		{Title: "Web Development", Fees: decimal.RequireFromString("1500.50")},
		{Title: "Python", Fees: decimal.RequireFromString("999.50")},
		{Title: "Design", Fees: decimal.Zero},
	}
	certs := []models.Certificate{
		{CertNumber: "A", CourseName: "Web Development", IssueDate: date(2024, 6, 3), Status: models.CertificateStatusValid},
		{CertNumber: "B", CourseName: "Web Development", IssueDate: date(2024, 6, 30), Status: models.CertificateStatusRevoked},
		{CertNumber: "C", CourseName: "Python", IssueDate: date(2024, 4, 10), Status: models.CertificateStatusValid},
		{CertNumber: "D", CourseName: "Python", IssueDate: date(2024, 1, 1), Status: models.CertificateStatusExpired},
		{CertNumber: "E", CourseName: "Legacy", IssueDate: date(2023, 12, 31), Status: models.CertificateStatusValid},
		{CertNumber: "F", CourseName: "Python", IssueDate: date(2023, 6, 15), Status: models.CertificateStatusValid},
	}
	return courses, certs
}

func TestCompute(t *testing.T) {
	courses, certs := fixtures()
	at := time.Date(2024, 6, 18, 12, 0, 0, 0, time.UTC)

	stats := Compute(courses, certs, at)

	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 6, stats.TotalCertificates)
	assert.True(t, decimal.RequireFromString("2500").Equal(stats.TotalRevenue), stats.TotalRevenue.String())
	assert.Equal(t, 2, stats.CertificatesThisMonth)
	assert.Equal(t, 4, stats.CertificatesThisYear)
	assert.Equal(t, map[string]int{"Valid": 4, "Revoked": 1, "Expired": 1}, stats.StatusBreakdown)

	assert.Equal(t, []CourseStat{
		{Name: "Web Development", Certificates: 2},
		{Name: "Python", Certificates: 3},
		{Name: "Design", Certificates: 0},
	}, stats.CourseStats)

	require.Len(t, stats.MonthlyTrends, 6)
	assert.Equal(t, MonthlyTrend{Month: "Jan", Year: 2024, Count: 1}, stats.MonthlyTrends[0])
	assert.Equal(t, MonthlyTrend{Month: "Apr", Year: 2024, Count: 1}, stats.MonthlyTrends[3])
	assert.Equal(t, MonthlyTrend{Month: "Jun", Year: 2024, Count: 2}, stats.MonthlyTrends[5])

	require.Len(t, stats.RecentCertificates, 5)
	assert.Equal(t, "B", stats.RecentCertificates[0].CertNumber)
	assert.Equal(t, "E", stats.RecentCertificates[4].CertNumber)
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil, nil, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))

	assert.Zero(t, stats.TotalCourses)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.NotNil(t, stats.RecentCertificates)
	assert.Len(t, stats.MonthlyTrends, 6)
	assert.Equal(t, "Oct", stats.MonthlyTrends[0].Month)
	assert.Equal(t, 2023, stats.MonthlyTrends[0].Year)
}

func TestStatsReadsFromStores(t *testing.T) {
	db := dbtest.New(t)
	courses, certs := fixtures()
	require.NoError(t, db.Create(&courses).Error)
	require.NoError(t, db.Create(&certs).Error)

	svc := NewService(repository.NewCourseRepository(db), repository.NewCertificateRepository(db))
	svc.clock = func() time.Time { return time.Date(2024, 6, 18, 0, 0, 0, 0, time.UTC) }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalCertificates)
	assert.Equal(t, 2, stats.CertificatesThisMonth)
	assert.True(t, decimal.RequireFromString("2500").Equal(stats.TotalRevenue))
}

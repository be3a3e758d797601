package utils

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"reachout/config"
	"reachout/database/dbtest"
	"reachout/models"
	"reachout/repository"
	analyticsService "reachout/services/analytics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	fail map[string]bool
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	if m.fail[to] {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func TestSetupLogger(t *testing.T) {
	defer func(prev zerolog.Logger, lvl zerolog.Level) {
		log.Logger = prev
		zerolog.SetGlobalLevel(lvl)
	}(log.Logger, zerolog.GlobalLevel())

	var buf bytes.Buffer
	setupLogger("warn", &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	setupLogger("chatty", &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "Unknown LOG_LEVEL")
}

func TestNewMailer(t *testing.T) {
	assert.IsType(t, LogMailer{}, NewMailer(&config.Config{}))
	assert.IsType(t, &SendGridMailer{}, NewMailer(&config.Config{SendgridApiKey: "SG.key", EmailSender: "a@b.c"}))
	assert.NoError(t, LogMailer{}.Send(context.Background(), "a@b.c", "subject", "<p>x</p>"))
}

func TestRenderStatsReport(t *testing.T) {
	stats := &analyticsService.Stats{
		TotalCourses:      2,
		TotalCertificates: 1,
		TotalRevenue:      decimal.RequireFromString("6499.5"),
		RecentCertificates: []models.Certificate{{
			StudentName: "Jane <Doe>",
			CourseName:  "Python",
			CertNumber:  "CERT-001-2024",
			Status:      models.CertificateStatusValid,
			IssueDate:   datatypes.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		}},
		GeneratedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	subject, body := RenderStatsReport(stats)
	assert.Equal(t, "ReachOut Academy report for 01 Mar 2024", subject)
	assert.Contains(t, body, "6499.50")
	assert.Contains(t, body, "CERT-001-2024")
	assert.Contains(t, body, "Jane &lt;Doe&gt;")
	assert.NotContains(t, body, "Jane <Doe>")
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Hello Jane & co", plainText("<h1>Hello</h1>\n<p>Jane &amp; co</p>"))
}

func TestReportJobRun(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	admins := repository.NewAdminRepository(db)
	courses := repository.NewCourseRepository(db)
	certs := repository.NewCertificateRepository(db)

	for _, email := range []string{"one@example.com", "two@example.com"} {
		require.NoError(t, admins.Create(ctx, &models.AdminUser{Email: email, PasswordHash: "x"}))
	}
	require.NoError(t, courses.Create(ctx, &models.Course{
		Title: "Python", Description: "Basics", Duration: "6 weeks", Fees: decimal.NewFromInt(1500),
	}))

	mailer := &recordingMailer{}
	job := &ReportJob{
		Analytics: analyticsService.NewService(courses, certs),
		Admins:    admins,
		Mailer:    mailer,
	}

	require.NoError(t, job.Run(ctx))
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "one@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "1500.00")

	mailer = &recordingMailer{fail: map[string]bool{"two@example.com": true}}
	job.Mailer = mailer
	err := job.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two@example.com")
	assert.Len(t, mailer.sent, 1)
}

func TestInitializeReportScheduler(t *testing.T) {
	_, err := InitializeReportScheduler("not a cron spec", &ReportJob{})
	assert.Error(t, err)

	c, err := InitializeReportScheduler("0 7 * * 1", &ReportJob{})
	require.NoError(t, err)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}

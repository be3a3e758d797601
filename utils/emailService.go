package utils

import (
	"context"
	"fmt"
	"html"
	"strings"

	"reachout/config"
	analyticsService "reachout/services/analytics"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "ReachOut Academy"

// Mailer delivers an HTML email to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridMailer(apiKey, sender string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(senderName, sender),
	}
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), plainText(htmlBody), htmlBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}

// LogMailer only logs; used when no SendGrid key is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("SENDGRID_API_KEY not set, email not sent")
	return nil
}

// NewMailer picks SendGrid when an API key is configured.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SendgridApiKey == "" {
		return LogMailer{}
	}
	return NewSendGridMailer(cfg.SendgridApiKey, cfg.EmailSender)
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1E3A8A; padding: 24px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 22px; }
			.content { padding: 32px 28px; color: #1F2937; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 16px; text-align: center; font-size: 12px; color: #666666; }
			table { width: 100%%; border-collapse: collapse; }
			td, th { padding: 6px 8px; border-bottom: 1px solid #E5E7EB; text-align: left; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>REACHOUT ACADEMY</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">Automated report from the ReachOut Academy admin service.</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(title), bodyContent)
}

// RenderStatsReport builds the subject and HTML body of the periodic report.
func RenderStatsReport(stats *analyticsService.Stats) (string, string) {
	subject := fmt.Sprintf("ReachOut Academy report for %s", stats.GeneratedAt.Format("02 Jan 2006"))

	var b strings.Builder
	b.WriteString("<table>")
	row := func(label string, value interface{}) {
		fmt.Fprintf(&b, "<tr><th>%s</th><td>%v</td></tr>", html.EscapeString(label), value)
	}
	row("Courses", stats.TotalCourses)
	row("Certificates issued", stats.TotalCertificates)
	row("Certificates this month", stats.CertificatesThisMonth)
	row("Certificates this year", stats.CertificatesThisYear)
	row("Listed course fees", stats.TotalRevenue.StringFixed(2))
	b.WriteString("</table>")

	if len(stats.RecentCertificates) > 0 {
		b.WriteString("<h3>Recent certificates</h3><table>")
		for _, cert := range stats.RecentCertificates {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
				html.EscapeString(cert.CertNumber),
				html.EscapeString(cert.StudentName),
				html.EscapeString(cert.CourseName),
				html.EscapeString(cert.Status))
		}
		b.WriteString("</table>")
	}

	return subject, getEmailTemplate("Dashboard summary", b.String())
}

func plainText(htmlBody string) string {
	var b strings.Builder
	inTag := false
	for _, r := range htmlBody {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}

package service

import (
	"bytes"
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/yuin/goldmark"

	"salesdesk/model"
	"salesdesk/store"
)

// SendPipelineDigest mails the day's pipeline numbers and newest deals to
// DIGEST_TO. Without an SMTP_HOST the digest is skipped, which keeps the
// cron entry harmless in development.
func SendPipelineDigest(st store.Store) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		logger.Infof("[%s] SMTP_HOST not set, skipping pipeline digest", "scheduled task")
		return nil
	}

	stats, err := (&StatsService{Store: st}).Dashboard()
	if err != nil {
		return fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	deals, err := st.ListDeals()
	if err != nil {
		return fmt.Errorf("failed to list deals: %w", err)
	}
	if len(deals) > 5 {
		deals = deals[:5]
	}

	md := buildDigestMarkdown(stats, deals)
	var html bytes.Buffer
	if err := goldmark.Convert([]byte(md), &html); err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	user := os.Getenv("SMTP_USER")

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = strings.Split(os.Getenv("DIGEST_TO"), ",")
	e.Subject = "Pipeline digest " + time.Now().Format("2006-01-02")
	e.Text = []byte(md)
	e.HTML = html.Bytes()

	if err := e.Send(host+":"+port, smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host)); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	logger.Infof("[%s] pipeline digest sent to %s", "scheduled task", os.Getenv("DIGEST_TO"))
	return nil
}

func buildDigestMarkdown(stats *DashboardStats, newest []model.Deal) string {
	var b strings.Builder
	b.WriteString("# Pipeline digest\n\n")
	b.WriteString(fmt.Sprintf("- Total deals: %d\n", stats.TotalDeals))
	b.WriteString(fmt.Sprintf("- Active deals: %d\n", stats.ActiveDeals))
	b.WriteString(fmt.Sprintf("- New leads: %d\n", stats.NewLeads))
	b.WriteString(fmt.Sprintf("- Conversion rate: %s\n", stats.ConversionRate))
	if len(newest) > 0 {
		b.WriteString("\n## Newest deals\n\n")
		for _, d := range newest {
			b.WriteString(fmt.Sprintf("- **%s** (%s): stage %s, status %s, owner %s\n",
				d.ClientName, d.ClientType, d.Stage, d.Status, d.Owner))
		}
	}
	return b.String()
}

package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"ooh-ops/internal/config/configs"
	"ooh-ops/internal/core/domain"
)

// SMTPMailer delivers cost estimates through a fixed relay host. It
// implements port.Mailer.
type SMTPMailer struct {
	addr    string
	from    string
	timeout time.Duration
	logger  *slog.Logger
}

// NewSMTPMailer creates a mailer from the SMTP config section.
func NewSMTPMailer(cfg configs.SMTP, logger *slog.Logger) *SMTPMailer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &SMTPMailer{
		addr:    net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		from:    cfg.From,
		timeout: timeout,
		logger:  logger,
	}
}

// SendCostEstimate renders the estimate as a plain-text message and
// hands it to the relay. The context deadline bounds the connection.
func (m *SMTPMailer) SendCostEstimate(ctx context.Context, to string, ce *domain.CostEstimate) error {
	dialer := net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return fmt.Errorf("connect to relay %s: %w", m.addr, err)
	}
	host, _, _ := net.SplitHostPort(m.addr)
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err = client.Mail(m.from); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err = wc.Write(m.render(to, ce)); err != nil {
		wc.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}
	m.logger.Info("cost estimate sent",
		slog.String("cost_estimate_id", ce.ID),
		slog.String("recipient", to))
	return client.Quit()
}

func (m *SMTPMailer) render(to string, ce *domain.CostEstimate) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Cost estimate %s\r\n", ce.ID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")

	fmt.Fprintf(&b, "Cost estimate for proposal %s\r\n\r\n", ce.ProposalID)
	for _, li := range ce.LineItems {
		fmt.Fprintf(&b, "- %s x%d @ %s: %s\r\n", li.Description, li.Quantity, li.UnitPrice, li.Total)
	}
	if ce.DurationDays > 0 {
		fmt.Fprintf(&b, "\r\nDuration: %d days\r\n", ce.DurationDays)
	}
	fmt.Fprintf(&b, "Total: %s\r\n", ce.TotalAmount)
	return []byte(b.String())
}

// LogMailer is used when no relay is configured: sends are recorded in
// the log and reported as delivered.
type LogMailer struct {
	Logger *slog.Logger
}

// SendCostEstimate logs the would-be delivery.
func (m LogMailer) SendCostEstimate(_ context.Context, to string, ce *domain.CostEstimate) error {
	m.Logger.Info("smtp relay not configured, skipping delivery",
		slog.String("cost_estimate_id", ce.ID),
		slog.String("recipient", to))
	return nil
}

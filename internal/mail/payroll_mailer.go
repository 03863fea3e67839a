package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Config carries SMTP settings plus an optional TestRecipient override. When
// TestRecipient is set, every payslip goes there instead of the employee's
// real address; the override always comes from configuration, never from
// code.
type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	TestRecipient string
}

type PayslipData struct {
	EmployeeName  string
	EmployeeEmail string
	Month         string // YYYY-MM-DD, first of the month
	TotalWorkDays string
	NetPay        string
}

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type PayrollMailer struct {
	cfg    Config
	sender Sender
	logger *zap.Logger
}

func NewPayrollMailer(cfg Config, logger *zap.Logger) *PayrollMailer {
	return &PayrollMailer{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger.Named("mail.payroll"),
	}
}

// NewPayrollMailerWithSender lets tests substitute the SMTP dialer.
func NewPayrollMailerWithSender(cfg Config, sender Sender, logger *zap.Logger) *PayrollMailer {
	return &PayrollMailer{cfg: cfg, sender: sender, logger: logger.Named("mail.payroll")}
}

func (m *PayrollMailer) SendPayslip(ctx context.Context, data PayslipData) error {
	recipient := data.EmployeeEmail
	if m.cfg.TestRecipient != "" {
		recipient = m.cfg.TestRecipient
	}
	if recipient == "" {
		m.logger.Warn("skip payslip email, no recipient",
			zap.String("employee", data.EmployeeName),
		)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Payslip for %s", formatMonth(data.Month)))
	msg.SetBody("text/html", renderPayslipBody(data))

	if err := m.sender.DialAndSend(msg); err != nil {
		m.logger.Error("send payslip email failed",
			zap.String("recipient", recipient),
			zap.Error(err),
		)
		return err
	}

	m.logger.Info("payslip email sent",
		zap.String("employee", data.EmployeeName),
		zap.String("recipient", recipient),
	)
	return nil
}

func renderPayslipBody(data PayslipData) string {
	return fmt.Sprintf(
		`<html><body>
<p>Dear %s,</p>
<p>Your payroll for <strong>%s</strong> has been computed.</p>
<table>
<tr><td>Total work days</td><td>%s</td></tr>
<tr><td>Net pay</td><td>%s</td></tr>
</table>
<p>HR Department</p>
</body></html>`,
		data.EmployeeName, formatMonth(data.Month), data.TotalWorkDays, data.NetPay,
	)
}

func formatMonth(monthKey string) string {
	// monthKey arrives as the payroll month key (YYYY-MM-DD); show MM/YYYY.
	if len(monthKey) >= 7 {
		return monthKey[5:7] + "/" + monthKey[0:4]
	}
	return monthKey
}

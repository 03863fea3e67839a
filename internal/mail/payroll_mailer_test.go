package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func payslipFixture() PayslipData {
	return PayslipData{
		EmployeeName:  "Budi Santoso",
		EmployeeEmail: "budi@example.com",
		Month:         "2025-02-01",
		TotalWorkDays: "21.50",
		NetPay:        "9772727.27",
	}
}

func TestSendPayslip(t *testing.T) {
	sender := &fakeSender{}
	mailer := NewPayrollMailerWithSender(Config{From: "hr@example.com"}, sender, zap.NewNop())

	err := mailer.SendPayslip(context.Background(), payslipFixture())
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"budi@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Payslip for 02/2025"}, msg.GetHeader("Subject"))
}

func TestSendPayslip_TestRecipientOverride(t *testing.T) {
	sender := &fakeSender{}
	mailer := NewPayrollMailerWithSender(Config{
		From:          "hr@example.com",
		TestRecipient: "qa@example.com",
	}, sender, zap.NewNop())

	err := mailer.SendPayslip(context.Background(), payslipFixture())
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"qa@example.com"}, sender.sent[0].GetHeader("To"))
}

func TestSendPayslip_NoRecipient(t *testing.T) {
	sender := &fakeSender{}
	mailer := NewPayrollMailerWithSender(Config{From: "hr@example.com"}, sender, zap.NewNop())

	data := payslipFixture()
	data.EmployeeEmail = ""
	err := mailer.SendPayslip(context.Background(), data)
	assert.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestSendPayslip_DialerError(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	mailer := NewPayrollMailerWithSender(Config{From: "hr@example.com"}, sender, zap.NewNop())

	err := mailer.SendPayslip(context.Background(), payslipFixture())
	assert.Error(t, err)
}

func TestRenderPayslipBody(t *testing.T) {
	body := renderPayslipBody(payslipFixture())
	assert.True(t, strings.Contains(body, "Budi Santoso"))
	assert.True(t, strings.Contains(body, "02/2025"))
	assert.True(t, strings.Contains(body, "9772727.27"))
}

package consumer

import (
	"context"
	"encoding/json"

	"go-hrpay/internal/events"
	"go-hrpay/internal/mail"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollComputed reads payroll_computed events and hands each one to
// the payroll mailer. Messages that fail to decode are committed and dropped;
// messages that fail to send stay uncommitted so the group retries them.
func ConsumePayrollComputed(
	ctx context.Context,
	reader *kafkago.Reader,
	mailer *mail.PayrollMailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_computed")
	log.Info("payroll computed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll computed consumer stopped")
				return
			}
			log.Error("fetch payroll computed message failed", zap.Error(err))
			continue
		}

		var event events.PayrollComputedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_computed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		err = mailer.SendPayslip(ctx, mail.PayslipData{
			EmployeeName:  event.EmployeeName,
			EmployeeEmail: event.EmployeeEmail,
			Month:         event.Month,
			TotalWorkDays: event.TotalWorkDays,
			NetPay:        event.NetPay,
		})
		if err != nil {
			log.Error("send payslip for event failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll computed message failed", zap.Error(err))
			continue
		}

		log.Info("payslip dispatched",
			zap.String("payroll_id", event.PayrollID),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

// Package notify builds and sends the two candidate-facing emails.
package notify

import (
	"context"
	"fmt"

	"github.com/AgentPisite999/agentpi-backend/internal/common/config"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/common/metrics"
	"github.com/AgentPisite999/agentpi-backend/internal/mailer"
)

// Dispatcher fires confirmation emails after screening and after payment.
// Delivery is best-effort: persistence has already happened by the time a
// dispatch runs, and a failure never rolls it back.
type Dispatcher struct {
	mailer mailer.Mailer
	cfg    config.NotificationConfig
	logger logger.Logger
}

func NewDispatcher(m mailer.Mailer, cfg config.NotificationConfig, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		mailer: m,
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "notify"}),
	}
}

// ScreeningReceived confirms a screening submission, carrying the enrollment
// identifier and the resume link.
func (d *Dispatcher) ScreeningReceived(ctx context.Context, name, email, position, enrollmentID, resumeLink string) error {
	msg := &mailer.Message{
		From:     d.cfg.FromAddress,
		FromName: d.cfg.FromName,
		To:       email,
		CC:       d.cfg.ScreeningCC,
		Subject:  "Screening Submitted - AgentPi",
		HTMLBody: fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>Your screening for the <strong>%s</strong> internship has been received.</p>
        <p>Your Enrollment ID: <strong>%s</strong></p>
        <p>Resume: <a href="%s" target="_blank">View Resume</a></p>
        <p>Our HR team will review your submission and contact you if you're selected.</p>
        <br><p>Regards,<br><strong>AgentPi Team</strong></p>
      `, name, position, enrollmentID, resumeLink),
	}

	return d.send(ctx, "screening_received", msg)
}

// PaymentReceived confirms a verified payment, carrying enrollment and
// payment identifiers for the HR follow-up.
func (d *Dispatcher) PaymentReceived(ctx context.Context, name, email, position, enrollmentID, paymentID string) error {
	msg := &mailer.Message{
		From:     d.cfg.FromAddress,
		FromName: d.cfg.FromName,
		To:       email,
		CC:       d.cfg.PaymentCC,
		Subject:  "Payment Received - AgentPi Internship",
		HTMLBody: fmt.Sprintf(`
        <h3>Hi %s,</h3>
        <p>Your payment has been successfully received for the <strong>%s</strong> internship.</p>
        <p>Enrollment ID: %s</p>
        <p>Payment ID: %s</p>
        <p>Our HR team will reach out to you shortly with the next steps.</p>
        <br><p>Regards,<br><strong>AgentPi Team</strong></p>
      `, name, position, enrollmentID, paymentID),
	}

	return d.send(ctx, "payment_received", msg)
}

func (d *Dispatcher) send(ctx context.Context, kind string, msg *mailer.Message) error {
	if err := d.mailer.Send(ctx, msg); err != nil {
		metrics.NotificationsFailed.WithLabelValues(kind).Inc()
		d.logger.Error("notification dispatch failed", map[string]interface{}{
			"kind":  kind,
			"to":    msg.To,
			"error": err.Error(),
		})
		return err
	}

	metrics.NotificationsSent.WithLabelValues(kind).Inc()
	d.logger.Info("notification sent", map[string]interface{}{
		"kind": kind,
		"to":   msg.To,
	})
	return nil
}

// internal/enrollment/service.go
package enrollment

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/common/metrics"
	"github.com/AgentPisite999/agentpi-backend/internal/payment"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

const orderCurrency = "INR"

// Notifier dispatches the payment confirmation email.
type Notifier interface {
	PaymentReceived(ctx context.Context, name, email, position, enrollmentID, paymentID string) error
}

// Service owns order creation and the verify-then-enroll transition.
type Service struct {
	store    store.TabularStore
	gateway  payment.Gateway
	notifier Notifier
	secret   string
	logger   logger.Logger
}

func NewService(s store.TabularStore, g payment.Gateway, n Notifier, secret string, log logger.Logger) *Service {
	return &Service{
		store:    s,
		gateway:  g,
		notifier: n,
		secret:   secret,
		logger:   log.WithFields(map[string]interface{}{"service": "enrollment"}),
	}
}

// CreateOrder opens a gateway order for the fee. Amount arrives in major
// units and is converted to minor units here. No candidate identity is
// attached at this stage.
func (s *Service) CreateOrder(ctx context.Context, amountMajor int64) (*payment.Order, error) {
	receipt := fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, amountMajor*100, orderCurrency, receipt)
	if err != nil {
		return nil, apperrors.NewOrderCreateFailedError(err)
	}

	s.logger.Info("payment order created", map[string]interface{}{
		"orderId": order.ID,
		"amount":  order.Amount,
	})
	return order, nil
}

// VerifyAndEnroll authenticates the payment confirmation and, only then,
// records the enrollment and fires the confirmation mail.
//
// The screening cross-reference is best-effort: a missing row degrades the
// resume link to records.ResumeLinkMissing instead of failing. There is no
// idempotency guard, so a repeated confirmation records a second enrollment.
func (s *Service) VerifyAndEnroll(ctx context.Context, input *VerifyInput) (*records.Enrollment, error) {
	if !payment.VerifySignature(input.OrderID, input.PaymentID, input.Signature, s.secret) {
		metrics.PaymentVerifications.WithLabelValues("invalid_signature").Inc()
		s.logger.Warn("payment signature rejected", map[string]interface{}{
			"orderId":      input.OrderID,
			"paymentId":    input.PaymentID,
			"enrollmentId": input.EnrollmentID,
		})
		return nil, apperrors.NewSignatureInvalidError()
	}

	resumeLink := records.ResumeLinkMissing
	rows, err := s.store.Scan(ctx, records.TableScreenings)
	if err != nil {
		metrics.PaymentVerifications.WithLabelValues("error").Inc()
		return nil, apperrors.NewStoreScanFailedError(records.TableScreenings, err)
	}
	for _, row := range rows {
		rec := records.ScreeningFromRow(row)
		if rec.EnrollmentID == input.EnrollmentID {
			resumeLink = rec.ResumeLink
			break
		}
	}

	record := &records.Enrollment{
		RecordedAt:   time.Now().UTC().Format(time.RFC3339),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		Duration:     input.Duration,
		PaymentID:    input.PaymentID,
		ResumeLink:   resumeLink,
		EnrollmentID: input.EnrollmentID,
		OwnerEmail:   ownerOrEmail(input.OwnerEmail, input.Email),
	}
	if err := s.store.Append(ctx, records.TableEnrollments, record.Row()); err != nil {
		metrics.PaymentVerifications.WithLabelValues("error").Inc()
		return nil, apperrors.NewStoreAppendFailedError(records.TableEnrollments, err)
	}

	metrics.PaymentVerifications.WithLabelValues("success").Inc()
	s.logger.Info("enrollment recorded", map[string]interface{}{
		"enrollmentId": input.EnrollmentID,
		"paymentId":    input.PaymentID,
		"resumeLink":   resumeLink,
	})

	// Row is committed; a mail failure surfaces as a server error but the
	// enrollment stands.
	if err := s.notifier.PaymentReceived(ctx, input.Name, input.Email, input.Position, input.EnrollmentID, input.PaymentID); err != nil {
		return record, apperrors.NewMailSendFailedError("payment_received", err)
	}

	return record, nil
}

// ListByOwner returns every enrollment whose owner column matches the email,
// case-insensitively.
func (s *Service) ListByOwner(ctx context.Context, email string) ([]*records.Enrollment, error) {
	rows, err := s.store.Scan(ctx, records.TableEnrollments)
	if err != nil {
		return nil, apperrors.NewStoreScanFailedError(records.TableEnrollments, err)
	}

	var matches []*records.Enrollment
	for _, row := range rows {
		rec := records.EnrollmentFromRow(row)
		if strings.EqualFold(rec.OwnerEmail, email) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

func ownerOrEmail(owner, email string) string {
	if owner != "" {
		return owner
	}
	return email
}

// internal/screening/service.go
package screening

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/common/metrics"
	"github.com/AgentPisite999/agentpi-backend/internal/blob"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

// Notifier dispatches the screening confirmation email.
type Notifier interface {
	ScreeningReceived(ctx context.Context, name, email, position, enrollmentID, resumeLink string) error
}

// Service accepts screening applications and answers owner lookups.
type Service struct {
	store    store.TabularStore
	blobs    blob.Store
	notifier Notifier
	logger   logger.Logger
}

func NewService(s store.TabularStore, b blob.Store, n Notifier, log logger.Logger) *Service {
	return &Service{
		store:    s,
		blobs:    b,
		notifier: n,
		logger:   log.WithFields(map[string]interface{}{"service": "screening"}),
	}
}

// Submit runs the screening intake: duplicate check, identifier issue,
// resume upload, row append, confirmation mail.
//
// The duplicate check is scan-then-append with no lock around it, so two
// concurrent submissions for the same email can both pass. That window is
// part of the observed contract, not a bug to fix here.
func (s *Service) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if len(input.Resume) == 0 {
		metrics.ScreeningsSubmitted.WithLabelValues("rejected").Inc()
		return nil, apperrors.NewValidationError("Resume missing")
	}

	rows, err := s.store.Scan(ctx, records.TableScreenings)
	if err != nil {
		return nil, apperrors.NewStoreScanFailedError(records.TableScreenings, err)
	}
	for _, row := range rows {
		existing := records.ScreeningFromRow(row)
		if strings.EqualFold(existing.Email, input.Email) {
			metrics.ScreeningsSubmitted.WithLabelValues("duplicate").Inc()
			s.logger.Info("duplicate screening rejected", map[string]interface{}{
				"email": input.Email,
			})
			return &SubmitOutput{Duplicate: true}, nil
		}
	}

	now := time.Now()
	enrollmentID := newEnrollmentID(now)

	fileName := fmt.Sprintf("%s_resume_%d.pdf", input.Name, now.UnixMilli())
	resumeLink, err := s.blobs.Upload(ctx, fileName, input.ResumeMIME, input.Resume)
	if err != nil {
		return nil, apperrors.NewBlobUploadFailedError(err)
	}

	record := &records.Screening{
		SubmittedAt:  now.UTC().Format(time.RFC3339),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Position:     input.Position,
		Duration:     input.Duration,
		EnrollmentID: enrollmentID,
		ResumeLink:   resumeLink,
		OwnerEmail:   ownerOrEmail(input.OwnerEmail, input.Email),
	}
	if err := s.store.Append(ctx, records.TableScreenings, record.Row()); err != nil {
		return nil, apperrors.NewStoreAppendFailedError(records.TableScreenings, err)
	}

	metrics.ScreeningsSubmitted.WithLabelValues("accepted").Inc()
	s.logger.Info("screening recorded", map[string]interface{}{
		"enrollmentId": enrollmentID,
		"email":        input.Email,
		"position":     input.Position,
	})

	// The row is already persisted; a failed mail surfaces as a server
	// error without undoing it.
	if err := s.notifier.ScreeningReceived(ctx, input.Name, input.Email, input.Position, enrollmentID, resumeLink); err != nil {
		return nil, apperrors.NewMailSendFailedError("screening_received", err)
	}

	return &SubmitOutput{EnrollmentID: enrollmentID, ResumeLink: resumeLink}, nil
}

// ListByOwner returns every screening whose owner column matches the email,
// case-insensitively.
func (s *Service) ListByOwner(ctx context.Context, email string) ([]*records.Screening, error) {
	rows, err := s.store.Scan(ctx, records.TableScreenings)
	if err != nil {
		return nil, apperrors.NewStoreScanFailedError(records.TableScreenings, err)
	}

	var matches []*records.Screening
	for _, row := range rows {
		rec := records.ScreeningFromRow(row)
		if strings.EqualFold(rec.OwnerEmail, email) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// newEnrollmentID issues "AGP" plus the last six digits of the current
// millisecond timestamp. Kept bit-for-bit compatible with the identifiers
// already present in the sheet; not collision-proof within the same window.
func newEnrollmentID(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	return "AGP" + millis[len(millis)-6:]
}

func ownerOrEmail(owner, email string) string {
	if owner != "" {
		return owner
	}
	return email
}

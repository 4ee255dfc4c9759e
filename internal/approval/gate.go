// Package approval answers whether a screened candidate has been cleared
// for payment.
package approval

import (
	"context"
	"strings"

	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

// Candidate is the snapshot handed to the payment page once a candidate
// clears the gate.
type Candidate struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Duration     string `json:"duration"`
	EnrollmentID string `json:"enrollmentId"`
	ResumeLink   string `json:"resumeLink"`
}

// Gate reads approval state off the screening table. Staff flip the status
// column out-of-band; this code never writes it.
type Gate struct {
	store  store.TabularStore
	logger logger.Logger
}

func NewGate(s store.TabularStore, log logger.Logger) *Gate {
	return &Gate{
		store:  s,
		logger: log.WithFields(map[string]interface{}{"service": "approval"}),
	}
}

// GetApprovedCandidate resolves an enrollment identifier to its candidate
// snapshot. The identifier match is case-sensitive exact; the status compare
// is trimmed and case-insensitive so "Approved" set by hand still counts.
func (g *Gate) GetApprovedCandidate(ctx context.Context, enrollmentID string) (*Candidate, error) {
	rows, err := g.store.Scan(ctx, records.TableScreenings)
	if err != nil {
		return nil, apperrors.NewStoreScanFailedError(records.TableScreenings, err)
	}

	for _, row := range rows {
		rec := records.ScreeningFromRow(row)
		if rec.EnrollmentID != enrollmentID {
			continue
		}

		status := strings.ToLower(strings.TrimSpace(rec.ApprovalStatus))
		if status != "approved" {
			return nil, apperrors.NewNotApprovedError("enrollmentId: " + enrollmentID)
		}

		return &Candidate{
			Name:         rec.Name,
			Email:        rec.Email,
			Phone:        rec.Phone,
			Position:     rec.Position,
			Duration:     rec.Duration,
			EnrollmentID: rec.EnrollmentID,
			ResumeLink:   rec.ResumeLink,
		}, nil
	}

	return nil, apperrors.NewNotFoundError("enrollmentId: " + enrollmentID)
}

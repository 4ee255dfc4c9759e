package approval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

func seedScreening(t *testing.T, tab *store.MemoryStore, id, status string) {
	t.Helper()

	rec := &records.Screening{
		SubmittedAt:    "2026-01-15T10:30:00Z",
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		Position:       "Backend Intern",
		Duration:       "3 months",
		EnrollmentID:   id,
		ResumeLink:     "https://drive.google.com/file/d/abc/view?usp=sharing",
		ApprovalStatus: status,
		OwnerEmail:     "asha@example.com",
	}
	assert.NoError(t, tab.Append(context.Background(), records.TableScreenings, rec.Row()))
}

func TestGetApprovedCandidate_Approved(t *testing.T) {
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "approved")

	gate := NewGate(tab, logger.Nop())
	candidate, err := gate.GetApprovedCandidate(context.Background(), "AGP123456")

	assert.NoError(t, err)
	assert.Equal(t, "Asha Verma", candidate.Name)
	assert.Equal(t, "AGP123456", candidate.EnrollmentID)
	assert.Equal(t, "Backend Intern", candidate.Position)
}

func TestGetApprovedCandidate_StatusSetByHand(t *testing.T) {
	// Staff edit the sheet directly, so "Approved " with stray case and
	// whitespace still counts.
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "  Approved ")

	gate := NewGate(tab, logger.Nop())
	_, err := gate.GetApprovedCandidate(context.Background(), "AGP123456")

	assert.NoError(t, err)
}

func TestGetApprovedCandidate_Pending(t *testing.T) {
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "pending")

	gate := NewGate(tab, logger.Nop())
	_, err := gate.GetApprovedCandidate(context.Background(), "AGP123456")

	assert.Equal(t, apperrors.ErrCodeNotApproved, apperrors.CodeOf(err))
}

func TestGetApprovedCandidate_EmptyStatus(t *testing.T) {
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "")

	gate := NewGate(tab, logger.Nop())
	_, err := gate.GetApprovedCandidate(context.Background(), "AGP123456")

	assert.Equal(t, apperrors.ErrCodeNotApproved, apperrors.CodeOf(err))
}

func TestGetApprovedCandidate_UnknownID(t *testing.T) {
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "approved")

	gate := NewGate(tab, logger.Nop())
	_, err := gate.GetApprovedCandidate(context.Background(), "AGP999999")

	assert.Equal(t, apperrors.ErrCodeResourceNotFound, apperrors.CodeOf(err))
}

func TestGetApprovedCandidate_IDMatchIsExact(t *testing.T) {
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "approved")

	gate := NewGate(tab, logger.Nop())
	_, err := gate.GetApprovedCandidate(context.Background(), "agp123456")

	assert.Equal(t, apperrors.ErrCodeResourceNotFound, apperrors.CodeOf(err))
}

package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScreeningRowRoundTrip(t *testing.T) {
	rec := &Screening{
		SubmittedAt:    "2026-01-15T10:30:00Z",
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		Position:       "Backend Intern",
		Duration:       "3 months",
		EnrollmentID:   "AGP123456",
		ResumeLink:     "https://drive.google.com/file/d/abc/view?usp=sharing",
		ApprovalStatus: "Approved",
		OwnerEmail:     "parent@example.com",
	}

	row := rec.Row()
	assert.Len(t, row, Width(TableScreenings))
	assert.Equal(t, rec, ScreeningFromRow(row))
}

func TestScreeningFromRow_Ragged(t *testing.T) {
	// Spreadsheets drop trailing empty cells. Short rows decode with the
	// missing columns empty instead of panicking.
	rec := ScreeningFromRow([]string{"2026-01-15T10:30:00Z", "Asha", "asha@example.com"})

	assert.Equal(t, "asha@example.com", rec.Email)
	assert.Empty(t, rec.ApprovalStatus)
	assert.Empty(t, rec.OwnerEmail)
}

func TestEnrollmentRowRoundTrip(t *testing.T) {
	rec := &Enrollment{
		RecordedAt:   "2026-01-20T08:00:00Z",
		Name:         "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		Position:     "Backend Intern",
		Duration:     "3 months",
		PaymentID:    "pay_xyz",
		ResumeLink:   ResumeLinkMissing,
		EnrollmentID: "AGP123456",
		OwnerEmail:   "asha@example.com",
	}

	row := rec.Row()
	assert.Len(t, row, Width(TableEnrollments))
	assert.Equal(t, rec, EnrollmentFromRow(row))
}

func TestEnrollmentColumnOrder(t *testing.T) {
	// The payment id sits at column 6 and the enrollment id at column 8.
	// Readers of the live sheet depend on these positions.
	rec := &Enrollment{PaymentID: "pay_xyz", EnrollmentID: "AGP123456"}
	row := rec.Row()

	assert.Equal(t, "pay_xyz", row[6])
	assert.Equal(t, "AGP123456", row[8])
}

func TestUserLogRow(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	row := UserLogRow(at, "Asha", "asha@example.com")

	assert.Equal(t, []string{"2026-01-15T10:30:00Z", "Asha", "asha@example.com"}, row)
}

func TestWidth_UnknownTable(t *testing.T) {
	assert.Equal(t, 0, Width("nope"))
}

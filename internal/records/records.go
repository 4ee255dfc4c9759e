// Package records maps the named candidate records onto the positional
// column layout of the tabular store. All index arithmetic lives here;
// nothing outside this package may touch a row by offset.
package records

import "time"

// Table names match the spreadsheet tabs, case included. Changing either
// the names or the column order breaks every existing reader.
const (
	TableScreenings  = "screening"
	TableEnrollments = "Enrollments"
	TableUserLog     = "user_log"
)

// ResumeLinkMissing is stored when an enrollment cannot be cross-referenced
// to a screening row.
const ResumeLinkMissing = "N/A"

// Column offsets for the screening table.
const (
	scrColSubmittedAt = iota
	scrColName
	scrColEmail
	scrColPhone
	scrColPosition
	scrColDuration
	scrColEnrollmentID
	scrColResumeLink
	scrColApprovalStatus
	scrColOwnerEmail
	screeningWidth
)

// Column offsets for the Enrollments table.
const (
	enrColRecordedAt = iota
	enrColName
	enrColEmail
	enrColPhone
	enrColPosition
	enrColDuration
	enrColPaymentID
	enrColResumeLink
	enrColEnrollmentID
	enrColOwnerEmail
	enrollmentWidth
)

const userLogWidth = 3

// Width returns the column span of a table, for range construction by the
// store backends.
func Width(table string) int {
	switch table {
	case TableScreenings:
		return screeningWidth
	case TableEnrollments:
		return enrollmentWidth
	case TableUserLog:
		return userLogWidth
	default:
		return 0
	}
}

// Screening is one row of the screening table.
type Screening struct {
	SubmittedAt    string `json:"date"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	Duration       string `json:"duration"`
	EnrollmentID   string `json:"enrollmentId"`
	ResumeLink     string `json:"resumeLink"`
	ApprovalStatus string `json:"status"`
	OwnerEmail     string `json:"-"`
}

// Row encodes the screening into its positional layout.
func (s *Screening) Row() []string {
	row := make([]string, screeningWidth)
	row[scrColSubmittedAt] = s.SubmittedAt
	row[scrColName] = s.Name
	row[scrColEmail] = s.Email
	row[scrColPhone] = s.Phone
	row[scrColPosition] = s.Position
	row[scrColDuration] = s.Duration
	row[scrColEnrollmentID] = s.EnrollmentID
	row[scrColResumeLink] = s.ResumeLink
	row[scrColApprovalStatus] = s.ApprovalStatus
	row[scrColOwnerEmail] = s.OwnerEmail
	return row
}

// ScreeningFromRow decodes a positional row. Spreadsheet rows can be ragged
// when trailing cells are empty, so short rows are padded.
func ScreeningFromRow(row []string) *Screening {
	row = pad(row, screeningWidth)
	return &Screening{
		SubmittedAt:    row[scrColSubmittedAt],
		Name:           row[scrColName],
		Email:          row[scrColEmail],
		Phone:          row[scrColPhone],
		Position:       row[scrColPosition],
		Duration:       row[scrColDuration],
		EnrollmentID:   row[scrColEnrollmentID],
		ResumeLink:     row[scrColResumeLink],
		ApprovalStatus: row[scrColApprovalStatus],
		OwnerEmail:     row[scrColOwnerEmail],
	}
}

// Enrollment is one row of the Enrollments table.
type Enrollment struct {
	RecordedAt   string `json:"date"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Duration     string `json:"duration"`
	PaymentID    string `json:"paymentId"`
	ResumeLink   string `json:"resumeLink"`
	EnrollmentID string `json:"enrollmentId"`
	OwnerEmail   string `json:"-"`
}

// Row encodes the enrollment into its positional layout.
func (e *Enrollment) Row() []string {
	row := make([]string, enrollmentWidth)
	row[enrColRecordedAt] = e.RecordedAt
	row[enrColName] = e.Name
	row[enrColEmail] = e.Email
	row[enrColPhone] = e.Phone
	row[enrColPosition] = e.Position
	row[enrColDuration] = e.Duration
	row[enrColPaymentID] = e.PaymentID
	row[enrColResumeLink] = e.ResumeLink
	row[enrColEnrollmentID] = e.EnrollmentID
	row[enrColOwnerEmail] = e.OwnerEmail
	return row
}

// EnrollmentFromRow decodes a positional row, padding ragged rows.
func EnrollmentFromRow(row []string) *Enrollment {
	row = pad(row, enrollmentWidth)
	return &Enrollment{
		RecordedAt:   row[enrColRecordedAt],
		Name:         row[enrColName],
		Email:        row[enrColEmail],
		Phone:        row[enrColPhone],
		Position:     row[enrColPosition],
		Duration:     row[enrColDuration],
		PaymentID:    row[enrColPaymentID],
		ResumeLink:   row[enrColResumeLink],
		EnrollmentID: row[enrColEnrollmentID],
		OwnerEmail:   row[enrColOwnerEmail],
	}
}

// UserLogRow encodes one activity-log entry.
func UserLogRow(at time.Time, name, email string) []string {
	return []string{at.UTC().Format(time.RFC3339), name, email}
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

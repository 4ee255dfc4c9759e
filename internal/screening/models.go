// internal/screening/models.go
package screening

// SubmitInput carries the screening form fields plus the uploaded resume.
type SubmitInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Position   string `json:"position"`
	Duration   string `json:"duration"`
	OwnerEmail string `json:"userEmail"`

	Resume     []byte `json:"-"`
	ResumeMIME string `json:"-"`
}

// SubmitOutput reports either the issued enrollment identifier or that the
// email already has a screening on file.
type SubmitOutput struct {
	Duplicate    bool   `json:"-"`
	EnrollmentID string `json:"enrollmentId,omitempty"`
	ResumeLink   string `json:"-"`
}

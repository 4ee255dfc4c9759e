// internal/enrollment/models.go
package enrollment

// VerifyInput is the payment confirmation plus the candidate fields echoed
// back by the payment page.
type VerifyInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
	Duration     string `json:"duration"`
	EnrollmentID string `json:"enrollmentId"`
	OrderID      string `json:"order_id"`
	PaymentID    string `json:"payment_id"`
	Signature    string `json:"signature"`
	OwnerEmail   string `json:"userEmail"`
}

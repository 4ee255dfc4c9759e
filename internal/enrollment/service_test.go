// internal/enrollment/service_test.go
package enrollment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/AgentPisite999/agentpi-backend/internal/common/errors"
	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
	"github.com/AgentPisite999/agentpi-backend/internal/payment"
	"github.com/AgentPisite999/agentpi-backend/internal/records"
	"github.com/AgentPisite999/agentpi-backend/internal/store"
)

const testSecret = "testsecret"

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	err          error
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*payment.Order, error) {
	f.lastAmount = amountMinor
	f.lastCurrency = currency
	f.lastReceipt = receipt
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Order{ID: "order_test", Amount: amountMinor, Currency: currency, Receipt: receipt}, nil
}

type fakeNotifier struct {
	err   error
	calls int
}

func (f *fakeNotifier) PaymentReceived(ctx context.Context, name, email, position, enrollmentID, paymentID string) error {
	f.calls++
	return f.err
}

func signFor(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func verifyInput() *VerifyInput {
	return &VerifyInput{
		Name:         "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		Position:     "Backend Intern",
		Duration:     "3 months",
		EnrollmentID: "AGP123456",
		OrderID:      "order_test",
		PaymentID:    "pay_test",
		Signature:    signFor("order_test", "pay_test"),
	}
}

func seedScreening(t *testing.T, tab *store.MemoryStore, id, resumeLink string) {
	t.Helper()
	rec := &records.Screening{EnrollmentID: id, ResumeLink: resumeLink, Email: "asha@example.com"}
	assert.NoError(t, tab.Append(context.Background(), records.TableScreenings, rec.Row()))
}

func TestCreateOrder_ConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(store.NewMemoryStore(), gw, &fakeNotifier{}, testSecret, logger.Nop())

	order, err := svc.CreateOrder(context.Background(), 500)

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", gw.lastCurrency)
	assert.Regexp(t, regexp.MustCompile(`^rcpt_\d+$`), gw.lastReceipt)
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway down")}
	svc := NewService(store.NewMemoryStore(), gw, &fakeNotifier{}, testSecret, logger.Nop())

	_, err := svc.CreateOrder(context.Background(), 500)

	assert.Equal(t, apperrors.ErrCodeOrderCreateFailed, apperrors.CodeOf(err))
}

func TestVerifyAndEnroll_Success(t *testing.T) {
	tab := store.NewMemoryStore()
	seedScreening(t, tab, "AGP123456", "http://resume/1")
	notifier := &fakeNotifier{}
	svc := NewService(tab, &fakeGateway{}, notifier, testSecret, logger.Nop())

	record, err := svc.VerifyAndEnroll(context.Background(), verifyInput())

	assert.NoError(t, err)
	assert.Equal(t, "pay_test", record.PaymentID)
	// Resume link carried over from the screening row with the same id.
	assert.Equal(t, "http://resume/1", record.ResumeLink)
	assert.Equal(t, 1, notifier.calls)

	rows, _ := tab.Scan(context.Background(), records.TableEnrollments)
	assert.Len(t, rows, 1)
	assert.Equal(t, "asha@example.com", records.EnrollmentFromRow(rows[0]).OwnerEmail)
}

func TestVerifyAndEnroll_TamperedSignature(t *testing.T) {
	tab := store.NewMemoryStore()
	notifier := &fakeNotifier{}
	svc := NewService(tab, &fakeGateway{}, notifier, testSecret, logger.Nop())

	input := verifyInput()
	input.Signature = signFor("order_test", "pay_other")

	_, err := svc.VerifyAndEnroll(context.Background(), input)

	assert.Equal(t, apperrors.ErrCodeSignatureInvalid, apperrors.CodeOf(err))
	assert.Zero(t, notifier.calls)

	rows, _ := tab.Scan(context.Background(), records.TableEnrollments)
	assert.Empty(t, rows)
}

func TestVerifyAndEnroll_UnknownScreening(t *testing.T) {
	tab := store.NewMemoryStore()
	svc := NewService(tab, &fakeGateway{}, &fakeNotifier{}, testSecret, logger.Nop())

	record, err := svc.VerifyAndEnroll(context.Background(), verifyInput())

	assert.NoError(t, err)
	assert.Equal(t, records.ResumeLinkMissing, record.ResumeLink)
}

func TestVerifyAndEnroll_MailFailureKeepsRecord(t *testing.T) {
	tab := store.NewMemoryStore()
	svc := NewService(tab, &fakeGateway{}, &fakeNotifier{err: errors.New("smtp down")}, testSecret, logger.Nop())

	record, err := svc.VerifyAndEnroll(context.Background(), verifyInput())

	assert.Equal(t, apperrors.ErrCodeMailSendFailed, apperrors.CodeOf(err))
	assert.NotNil(t, record)

	rows, _ := tab.Scan(context.Background(), records.TableEnrollments)
	assert.Len(t, rows, 1)
}

func TestVerifyAndEnroll_RepeatedConfirmationAppendsAgain(t *testing.T) {
	// There is no idempotency guard. A replayed confirmation with a valid
	// signature records a second enrollment row.
	tab := store.NewMemoryStore()
	svc := NewService(tab, &fakeGateway{}, &fakeNotifier{}, testSecret, logger.Nop())
	ctx := context.Background()

	_, err := svc.VerifyAndEnroll(ctx, verifyInput())
	assert.NoError(t, err)
	_, err = svc.VerifyAndEnroll(ctx, verifyInput())
	assert.NoError(t, err)

	rows, _ := tab.Scan(ctx, records.TableEnrollments)
	assert.Len(t, rows, 2)
}

func TestVerifyAndEnroll_OwnerEmailFallback(t *testing.T) {
	tab := store.NewMemoryStore()
	svc := NewService(tab, &fakeGateway{}, &fakeNotifier{}, testSecret, logger.Nop())

	input := verifyInput()
	input.OwnerEmail = "parent@example.com"
	_, err := svc.VerifyAndEnroll(context.Background(), input)
	assert.NoError(t, err)

	rows, _ := tab.Scan(context.Background(), records.TableEnrollments)
	assert.Equal(t, "parent@example.com", records.EnrollmentFromRow(rows[0]).OwnerEmail)
}

func TestListByOwner(t *testing.T) {
	tab := store.NewMemoryStore()
	ctx := context.Background()

	a := &records.Enrollment{Name: "A", OwnerEmail: "Parent@Example.com"}
	b := &records.Enrollment{Name: "B", OwnerEmail: "other@example.com"}
	assert.NoError(t, tab.Append(ctx, records.TableEnrollments, a.Row()))
	assert.NoError(t, tab.Append(ctx, records.TableEnrollments, b.Row()))

	svc := NewService(tab, &fakeGateway{}, &fakeNotifier{}, testSecret, logger.Nop())

	matches, err := svc.ListByOwner(ctx, "parent@example.com")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "A", matches[0].Name)
}

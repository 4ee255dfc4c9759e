package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	sig := sign("order_123", "pay_456", "topsecret")
	assert.True(t, VerifySignature("order_123", "pay_456", sig, "topsecret"))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	sig := sign("order_123", "pay_456", "topsecret")
	assert.False(t, VerifySignature("order_123", "pay_456", sig, "othersecret"))
}

func TestVerifySignature_TamperedPaymentID(t *testing.T) {
	sig := sign("order_123", "pay_456", "topsecret")
	assert.False(t, VerifySignature("order_123", "pay_457", sig, "topsecret"))
}

func TestVerifySignature_CaseFoldedDigestRejected(t *testing.T) {
	// The compare is exact. An uppercased hex digest of the right MAC must
	// not pass.
	sig := strings.ToUpper(sign("order_123", "pay_456", "topsecret"))
	assert.False(t, VerifySignature("order_123", "pay_456", sig, "topsecret"))
}

func TestVerifySignature_EmptySignature(t *testing.T) {
	assert.False(t, VerifySignature("order_123", "pay_456", "", "topsecret"))
}

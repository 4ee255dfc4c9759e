// Package payment holds the payment gateway abstraction and the signature
// check that gates enrollment.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature authenticates a payment confirmation. The gateway signs
// the string "<orderID>|<paymentID>" with HMAC-SHA256 under the shared key
// secret; the hex digest must match the supplied signature exactly. No
// trimming, no case folding.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return expected == signature
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateJSON_CreateOrder(t *testing.T) {
	assert.NoError(t, ValidateJSON([]byte(`{"amount": 500}`), CreateOrderSchema))
	assert.Error(t, ValidateJSON([]byte(`{}`), CreateOrderSchema))
	assert.Error(t, ValidateJSON([]byte(`{"amount": 0}`), CreateOrderSchema))
	assert.Error(t, ValidateJSON([]byte(`{"amount": "500"}`), CreateOrderSchema))
}

func TestValidateJSON_Verify(t *testing.T) {
	valid := `{
		"email": "asha@example.com",
		"order_id": "order_test",
		"payment_id": "pay_test",
		"signature": "abc123"
	}`
	assert.NoError(t, ValidateJSON([]byte(valid), VerifySchema))

	missingSignature := `{
		"email": "asha@example.com",
		"order_id": "order_test",
		"payment_id": "pay_test"
	}`
	err := ValidateJSON([]byte(missingSignature), VerifySchema)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestValidateJSON_Malformed(t *testing.T) {
	assert.Error(t, ValidateJSON([]byte(`{not json`), CreateOrderSchema))
}

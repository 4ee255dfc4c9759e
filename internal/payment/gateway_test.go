package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderFromResponse_Complete(t *testing.T) {
	// The SDK decodes JSON into map[string]interface{}, so numbers arrive
	// as float64.
	order, err := orderFromResponse(map[string]interface{}{
		"id":       "order_MkQ9abc",
		"amount":   float64(50000),
		"currency": "INR",
		"receipt":  "rcpt_1700000000000",
	})

	assert.NoError(t, err)
	assert.Equal(t, "order_MkQ9abc", order.ID)
	assert.Equal(t, int64(50000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rcpt_1700000000000", order.Receipt)
}

func TestOrderFromResponse_IntAmount(t *testing.T) {
	order, err := orderFromResponse(map[string]interface{}{
		"id":     "order_MkQ9abc",
		"amount": 50000,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), order.Amount)
}

func TestOrderFromResponse_MissingID(t *testing.T) {
	_, err := orderFromResponse(map[string]interface{}{
		"amount": float64(50000),
	})
	assert.Error(t, err)
}

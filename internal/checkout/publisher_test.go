package checkout

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

func TestNewSubmissionMessage(t *testing.T) {
	payload := &domain.OrderPayload{
		Customer: domain.Customer{
			Email:     "a@b.com",
			FirstName: "A",
			LastName:  "B",
			Address:   "X",
			Zip:       "1",
			City:      "Y",
		},
		Items: []domain.CartLine{
			{ID: "4", Name: "Glow Spinner", Price: 159, Quantity: 2},
		},
		Total:     318,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	msg, err := newSubmissionMessage(payload)
	require.NoError(t, err)

	// Key is a fresh submission id.
	_, err = uuid.Parse(string(msg.Key))
	assert.NoError(t, err)

	// Value is the full payload blob.
	var decoded domain.OrderPayload
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, *payload, decoded)

	// Headers carry the reply-to address and the rendered total.
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "a@b.com", headers["reply_to"])
	assert.Equal(t, "318", headers["order_total"])
}

func TestNewSubmissionMessage_FreshKeyPerSubmission(t *testing.T) {
	payload := &domain.OrderPayload{
		Customer:  domain.Customer{Email: "a@b.com"},
		Items:     []domain.CartLine{{ID: "1", Name: "Classic Spinner", Price: 99, Quantity: 1}},
		Total:     99,
		CreatedAt: time.Now().UTC(),
	}

	first, err := newSubmissionMessage(payload)
	require.NoError(t, err)
	second, err := newSubmissionMessage(payload)
	require.NoError(t, err)

	assert.NotEqual(t, string(first.Key), string(second.Key))
}

package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentJSON_ReceivedAt(t *testing.T) {
	t.Run("OmittedBeforeReceive", func(t *testing.T) {
		data, err := json.Marshal(Shipment{ID: "ship1", Status: StatusCreated})
		require.NoError(t, err)

		var fields map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.NotContains(t, fields, "received_at")
	})

	t.Run("PresentAfterReceive", func(t *testing.T) {
		at := time.Date(2024, 1, 3, 13, 58, 0, 0, time.UTC)
		next, err := Receive(Shipment{ID: "ship1", Status: StatusInTransit}, ReceiveTx{Timestamp: at}, ReceivePolicy{})
		require.NoError(t, err)

		data, err := json.Marshal(next)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"received_at":"2024-01-03T13:58:00Z"`)
	})
}

func TestShipmentClone_CopiesReceivedAt(t *testing.T) {
	at := time.Date(2024, 1, 3, 13, 58, 0, 0, time.UTC)
	s := Shipment{ID: "ship1", Status: StatusArrived, ReceivedAt: &at}

	out := s.Clone()
	*out.ReceivedAt = at.Add(time.Hour)

	assert.Equal(t, at, *s.ReceivedAt)
}

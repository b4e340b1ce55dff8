package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"qrlink/internal/model"
)

func TestProducer_SendScan_NilProducer(t *testing.T) {
	t.Run("nil producer returns nil", func(t *testing.T) {
		var p *Producer
		msg := &model.ScanMessage{
			Identifier: "aB3dE5fG",
			LinkID:     7,
			IPAddress:  "192.168.1.1",
			UserAgent:  "test-agent",
			Referrer:   "https://example.com",
			ScannedAt:  time.Now(),
		}

		err := p.SendScan(context.Background(), msg)
		assert.NoError(t, err)
	})
}

func TestProducer_Close(t *testing.T) {
	t.Run("nil producer close returns nil", func(t *testing.T) {
		var p *Producer
		err := p.Close()
		assert.NoError(t, err)
	})
}

func TestScanMessage(t *testing.T) {
	t.Run("marshal and unmarshal", func(t *testing.T) {
		now := time.Now()
		msg := &model.ScanMessage{
			Identifier: "aB3dE5fG",
			LinkID:     7,
			IPAddress:  "192.168.1.1",
			UserAgent:  "test-agent",
			Referrer:   "https://example.com",
			Country:    "DE",
			ScannedAt:  now,
		}

		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		var unmarshaled model.ScanMessage
		err = json.Unmarshal(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, msg.Identifier, unmarshaled.Identifier)
		assert.Equal(t, msg.LinkID, unmarshaled.LinkID)
		assert.Equal(t, msg.IPAddress, unmarshaled.IPAddress)
		assert.Equal(t, msg.UserAgent, unmarshaled.UserAgent)
		assert.Equal(t, msg.Country, unmarshaled.Country)
	})

	t.Run("empty message", func(t *testing.T) {
		msg := &model.ScanMessage{}
		data, err := json.Marshal(msg)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}

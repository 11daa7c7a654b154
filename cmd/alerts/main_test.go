package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/catalogstore/internal/domain/inventory"
)

func TestAlertHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := &alertHandler{log: zap.New(core)}

	event := inventory.StockEvent{
		EventID:       uuid.New(),
		Catalog:       "textbooks",
		ItemID:        uuid.New(),
		Title:         "Calculus",
		Type:          inventory.MutationSale,
		Quantity:      8,
		PreviousStock: 10,
		NewStock:      2,
		Threshold:     5,
		OccurredAt:    time.Now(),
	}
	body, err := json.Marshal(event)
	require.NoError(t, err)

	require.NoError(t, h.handle(context.Background(), body))

	entries := logs.FilterMessage("低库存告警").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "textbooks", fields["catalog"])
	assert.Equal(t, int64(2), fields["stock"])
	assert.Equal(t, int64(5), fields["threshold"])
	assert.Equal(t, event.ItemID.String(), fields["item_id"])
}

func TestAlertHandlerRejectsGarbage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := &alertHandler{log: zap.New(core)}

	assert.Error(t, h.handle(context.Background(), []byte("not json")))
	assert.Zero(t, logs.Len())
}

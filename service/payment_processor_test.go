package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchtostitch-me/models"
)

func TestSimulatedProcessor_ChargeWaitsOutDelay(t *testing.T) {
	processor := &SimulatedProcessor{Delay: 50 * time.Millisecond}
	order := &models.Order{ID: "1001", TotalPrice: 33}

	start := time.Now()
	paymentDate, err := processor.Charge(context.Background(), order)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)

	parsed, err := time.Parse(time.RFC3339, paymentDate)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}

func TestSimulatedProcessor_ChargeCanceled(t *testing.T) {
	processor := &SimulatedProcessor{Delay: 5 * time.Second}
	order := &models.Order{ID: "1001"}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := processor.Charge(ctx, order)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewSimulatedProcessor_DefaultDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, NewSimulatedProcessor().Delay)
}

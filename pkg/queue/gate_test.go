package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_AcquireRelease(t *testing.T) {
	gate := NewGate(2, time.Second)
	ctx := context.Background()

	release1, err := gate.Acquire(ctx)
	require.NoError(t, err)
	release2, err := gate.Acquire(ctx)
	require.NoError(t, err)

	stats := gate.Stats()
	assert.Equal(t, 2, stats.MaxConcurrent)
	assert.Equal(t, 2, stats.Active)

	release1()
	assert.Equal(t, 1, gate.Stats().Active)

	// Release is idempotent.
	release1()
	assert.Equal(t, 1, gate.Stats().Active)

	release2()
	assert.Equal(t, 0, gate.Stats().Active)
}

func TestGate_TimeoutWhenFull(t *testing.T) {
	gate := NewGate(1, 50*time.Millisecond)
	ctx := context.Background()

	release, err := gate.Acquire(ctx)
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, err = gate.Acquire(ctx)
	require.ErrorIs(t, err, ErrQueueTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestGate_ContextCancellation(t *testing.T) {
	gate := NewGate(1, time.Minute)

	release, err := gate.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = gate.Acquire(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGate_WaiterAdmittedOnRelease(t *testing.T) {
	gate := NewGate(1, time.Second)

	release, err := gate.Acquire(context.Background())
	require.NoError(t, err)

	admitted := make(chan struct{})
	go func() {
		r, err := gate.Acquire(context.Background())
		if err == nil {
			r()
			close(admitted)
		}
	}()

	time.Sleep(20 * time.Millisecond)
	release()

	select {
	case <-admitted:
	case <-time.After(time.Second):
		t.Fatal("waiter was not admitted after release")
	}
}

func TestNewGate_ClampsToOne(t *testing.T) {
	gate := NewGate(0, time.Second)
	assert.Equal(t, 1, gate.Stats().MaxConcurrent)
}

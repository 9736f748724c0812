package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

func noop(context.Context) error { return nil }

func TestNewDaily_Schedule(t *testing.T) {
	d, err := NewDaily("test", 10, 0, noop, logger.NewNop())
	require.NoError(t, err)

	before := time.Date(2026, 4, 1, 9, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 4, 1, 10, 0, 0, 0, time.Local), d.schedule.Next(before))

	// ровно в момент запуска следующий запуск - через сутки
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 4, 2, 10, 0, 0, 0, time.Local), d.schedule.Next(at))

	// пропущенный запуск не навёрстывается
	after := time.Date(2026, 4, 1, 10, 1, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 4, 2, 10, 0, 0, 0, time.Local), d.schedule.Next(after))
}

func TestNewDaily_InvalidTime(t *testing.T) {
	_, err := NewDaily("test", 24, 0, noop, logger.NewNop())
	assert.Error(t, err)

	_, err = NewDaily("test", 10, 60, noop, logger.NewNop())
	assert.Error(t, err)
}

func TestDaily_JobErrorIsOnlyLogged(t *testing.T) {
	var runs int
	d, err := NewDaily("test", 0, 0, func(context.Context) error {
		runs++
		return errors.New("boom")
	}, logger.NewNop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		d.run(context.Background())
		d.run(context.Background())
	})
	assert.Equal(t, 2, runs)
}

func TestDaily_RunStopsOnCancel(t *testing.T) {
	d, err := NewDaily("test", 3, 30, noop, logger.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

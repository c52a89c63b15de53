package async

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_DeliversValue(t *testing.T) {
	result := <-Go(context.Background(), func() (int, error) {
		return 42, nil
	})

	require.NoError(t, result.Err)
	assert.Equal(t, 42, result.Value)
}

func TestGo_DeliversError(t *testing.T) {
	boom := errors.New("boom")

	result := <-Go(context.Background(), func() (int, error) {
		return 0, boom
	})

	assert.ErrorIs(t, result.Err, boom)
}

func TestGo_CancelledContextDiscardsValue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	resultChan := Go(ctx, func() (int, error) {
		close(started)
		<-ctx.Done()
		return 42, nil
	})

	<-started
	cancel()
	result := <-resultChan

	assert.ErrorIs(t, result.Err, context.Canceled)
	assert.Zero(t, result.Value)
}

func TestGo_SenderNeverBlocks(t *testing.T) {
	// the channel is buffered, so the result lands even if the caller reads
	// late.
	resultChan := Go(context.Background(), func() (string, error) {
		return "done", nil
	})

	result := <-resultChan
	assert.Equal(t, "done", result.Value)
}

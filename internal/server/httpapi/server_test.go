package httpapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := NewHTTPServer("127.0.0.1:0", nopLogger{}, &fakeUserService{}, &fakeAudioService{}, &fakeOnboardingService{}, []string{"*"})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRun_BadAddress(t *testing.T) {
	srv := NewHTTPServer("256.256.256.256:99999", nopLogger{}, &fakeUserService{}, &fakeAudioService{}, &fakeOnboardingService{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := srv.Run(ctx)
	require.Error(t, err)
}

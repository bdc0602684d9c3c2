package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New("127.0.0.1:0", "127.0.0.1:0", http.NotFoundHandler(), http.NotFoundHandler(), zaptest.NewLogger(t).Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	defer goleak.VerifyNone(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s := New(l.Addr().String(), "127.0.0.1:0", http.NotFoundHandler(), http.NotFoundHandler(), zaptest.NewLogger(t).Sugar())

	err = s.Run(context.Background())
	assert.Error(t, err)
}

package server_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskcal/taskcal/internal/server"
	"github.com/taskcal/taskcal/tests/testutil"
)

func TestServeAndShutdown(t *testing.T) {
	s := server.New(testutil.NewTestStore(t), "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe(ctx) }()

	// Shutdown may land before or after the listener opens; either
	// way ListenAndServe returns ErrServerClosed.
	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-errc, http.ErrServerClosed)
}

func TestShutdownWithoutServe(t *testing.T) {
	s := server.New(testutil.NewTestStore(t), "127.0.0.1:0")
	require.NoError(t, s.Shutdown(context.Background()))
}

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/chatappointment/services/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serverConfig(port string) config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"user-service"}`))
	})
}

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return strconv.Itoa(port)
}

func TestServer_ListenServeShutdown(t *testing.T) {
	srv := New(serverConfig("0"), okHandler(), zap.NewNop())
	require.NoError(t, srv.Listen())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve() }()

	resp, err := http.Get(fmt.Sprintf("http://%s/health", srv.Addr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"status":"healthy","service":"user-service"}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}

func TestServer_BindError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := strconv.Itoa(occupied.Addr().(*net.TCPAddr).Port)
	srv := New(serverConfig(port), okHandler(), zap.NewNop())

	err = srv.Listen()
	require.Error(t, err)

	var bindErr *BindError
	require.True(t, errors.As(err, &bindErr))
	assert.Equal(t, "127.0.0.1:"+port, bindErr.Addr)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestServer_RunFailsFastOnBindError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := strconv.Itoa(occupied.Addr().(*net.TCPAddr).Port)
	srv := New(serverConfig(port), okHandler(), zap.NewNop())

	err = srv.Run(context.Background())

	var bindErr *BindError
	assert.True(t, errors.As(err, &bindErr))
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv := New(serverConfig("0"), okHandler(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestServer_ServeWithoutListen(t *testing.T) {
	srv := New(serverConfig("0"), okHandler(), zap.NewNop())
	assert.Error(t, srv.Serve())
}

func TestServer_ListensOnConfiguredPort(t *testing.T) {
	port := freePort(t)
	t.Setenv("PORT", port)

	cfg, err := config.Load(config.UserServicePort)
	require.NoError(t, err)
	cfg.Server.Host = "127.0.0.1"

	srv := New(cfg.Server, okHandler(), zap.NewNop())
	require.NoError(t, srv.Listen())
	defer srv.Shutdown(context.Background())

	go srv.Serve()

	assert.Equal(t, "127.0.0.1:"+port, srv.Addr())

	resp, err := http.Get("http://127.0.0.1:" + port + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_ListensOnDefaultPort(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load(config.UserServicePort)
	require.NoError(t, err)
	cfg.Server.Host = "127.0.0.1"

	srv := New(cfg.Server, okHandler(), zap.NewNop())
	if err := srv.Listen(); err != nil {
		var bindErr *BindError
		require.True(t, errors.As(err, &bindErr))
		t.Skipf("default port is taken on this host: %v", err)
	}
	defer srv.Shutdown(context.Background())

	go srv.Serve()

	assert.Equal(t, "127.0.0.1:3000", srv.Addr())

	resp, err := http.Get("http://127.0.0.1:3000/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

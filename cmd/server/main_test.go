package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/accounts/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	exitVal := m.Run()
	os.Exit(exitVal)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close() //nolint:errcheck
	return l.Addr().(*net.TCPAddr).Port
}

func TestServe_GracefulShutdown(t *testing.T) {
	fiberApp := fiber.New(fiber.Config{DisableStartupMessage: true})
	fiberApp.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	srv := &config.Server{Scheme: "http", Host: "localhost", Port: freePort(t), ShutdownTimeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, fiberApp, srv, slog.Default())
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", srv.Addr())
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServe_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close() //nolint:errcheck

	fiberApp := fiber.New(fiber.Config{DisableStartupMessage: true})
	srv := &config.Server{Port: l.Addr().(*net.TCPAddr).Port, ShutdownTimeout: time.Second}

	err = serve(context.Background(), fiberApp, srv, slog.Default())
	assert.Error(t, err)
}

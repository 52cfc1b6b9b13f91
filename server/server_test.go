package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		mode  string
		debug bool
	}{
		{"development", true},
		{"production", false},
		{"dev", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("mode="+tt.mode, func(t *testing.T) {
			cfg := NewConfig(tt.mode)
			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Equal(t, "0.0.0.0", cfg.Host)
			assert.Equal(t, 80, cfg.Port)
			assert.Equal(t, "0.0.0.0:80", cfg.Addr())
		})
	}
}

func TestNewApp_Metrics(t *testing.T) {
	e := NewApp(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Duration-ms"))
}

func TestNewApp_RecoversPanics(t *testing.T) {
	e := NewApp(nil)
	e.GET("/panic", func(c echo.Context) error { panic("handler bug") })

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewApp_NoExtensionRoutes(t *testing.T) {
	e := NewApp(nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServe_ShutdownOnCancel(t *testing.T) {
	e := NewApp(nil)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, e, "127.0.0.1:0") }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + e.ListenerAddr().String() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = serve(context.Background(), NewApp(nil), ln.Addr().String())
	assert.Error(t, err, "address in use must be reported")
}

func TestStart_AppliesDebug(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	addr := ln.Addr().(*net.TCPAddr)

	e := NewApp(nil)
	err = Start(context.Background(), e, Config{Host: "127.0.0.1", Port: addr.Port, Debug: true})
	assert.Error(t, err)
	assert.True(t, e.Debug)
}

package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reachout/client"
	"reachout/config"
	"reachout/database/dbtest"
	"reachout/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckServerAgainstRunningServer(t *testing.T) {
	app := server.New(&config.Config{JWTKey: "secret", TokenTTL: time.Hour, SaltRound: 4, CorsOrigins: "*"}, dbtest.New(t), server.Options{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln)
	t.Cleanup(func() { _ = app.Shutdown() })

	assert.True(t, checkServer(context.Background(), client.New("http://"+ln.Addr().String())))
}

func TestCheckServerNotRunning(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	assert.False(t, checkServer(context.Background(), client.New("http://"+addr)))
}

func TestCheckServerLoginFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status":"OK","database":"ok"}`))
		case "/api/courses":
			_, _ = w.Write([]byte(`{"error":false,"data":[],"count":0}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":true,"message":"Internal server error"}`))
		}
	}))
	defer srv.Close()

	assert.False(t, checkServer(context.Background(), client.New(srv.URL)))
}

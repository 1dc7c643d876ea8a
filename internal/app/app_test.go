package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acres-chat/internal/config"
)

func TestNewApp(t *testing.T) {
	ragflowServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/v1/chats":
			_, _ = w.Write([]byte(`{"code":0,"data":[{"id":"agent-1","name":"acres"}]}`))
		case r.URL.Path == "/api/v1/chats/agent-1/sessions":
			_, _ = w.Write([]byte(`{"code":0,"data":{"id":"session-1"}}`))
		case r.URL.Path == "/api/v1/datasets":
			_, _ = w.Write([]byte(`{"code":0,"data":{"id":"dataset-1","name":"papers"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ragflowServer.Close()

	cfg := &config.Config{
		AppPort:         8000,
		LogLevel:        "DEBUG",
		RAGFlowAPIKey:   "test-key",
		RAGFlowBaseURL:  ragflowServer.URL,
		AgentName:       "acres",
		DatasetName:     "papers",
		DocumentBaseURL: "https://papers.example.org",
		WelcomeMessage:  "Welcome!",
	}

	application, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, application)

	assert.NotNil(t, application.Server)
	assert.Equal(t, ":8000", application.Server.Addr)
	assert.NotNil(t, application.Chats)
	assert.Equal(t, "Default", application.Chats.ActiveChat())
}

func TestNewAppUnknownAgent(t *testing.T) {
	ragflowServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"data":[]}`))
	}))
	defer ragflowServer.Close()

	cfg := &config.Config{
		AppPort:        8000,
		LogLevel:       "DEBUG",
		RAGFlowAPIKey:  "test-key",
		RAGFlowBaseURL: ragflowServer.URL,
		AgentName:      "missing",
		DatasetName:    "papers",
	}

	application, err := NewApp(cfg)
	require.Error(t, err)
	assert.Nil(t, application)
	assert.Contains(t, err.Error(), "missing")
}

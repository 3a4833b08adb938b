package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListModelsPassesBodyThroughVerbatim(t *testing.T) {
	const upstreamBody = `{"object":"list","data":[{"id":"llama-3.1-8b","object":"model"}]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, "Bearer lm-studio", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, upstreamBody)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "lm-studio"})

	body, err := client.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, upstreamBody, string(body))
}

func TestCreateChatCompletionSendsPayload(t *testing.T) {
	var got ChatPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		io.WriteString(w, `{"id":"chatcmpl-1"}`)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "k"})

	payload := &ChatPayload{
		Model:       "llama-3.1-8b",
		Messages:    []Message{{Role: "user", Content: "hi"}},
		MaxTokens:   512,
		Temperature: 0.7,
	}
	_, err := client.CreateChatCompletion(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "llama-3.1-8b", got.Model)
	assert.Equal(t, 512, got.MaxTokens)
	assert.Equal(t, 0.7, got.Temperature)
	assert.False(t, got.Stream)
}

func TestNonSuccessStatusBecomesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "model not loaded")
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "k"})

	_, err := client.ListModels(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "model not loaded", statusErr.Body)
}

func TestStreamChatCompletionSetsStreamFlag(t *testing.T) {
	var got ChatPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, "data: {\"choices\":[]}\n\n")
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "k"})

	payload := &ChatPayload{Model: "m", MaxTokens: 600, Temperature: 0.5}
	body, err := client.StreamChatCompletion(context.Background(), payload)
	require.NoError(t, err)
	defer body.Close()

	assert.True(t, got.Stream)
	// The caller's payload is not mutated.
	assert.False(t, payload.Stream)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "data: {\"choices\":[]}\n\n", string(data))
}

func TestStreamCancellationAbortsUpstream(t *testing.T) {
	upstreamAborted := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		// Hold the stream open until the client goes away.
		<-r.Context().Done()
		close(upstreamAborted)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "k"})

	ctx, cancel := context.WithCancel(context.Background())
	body, err := client.StreamChatCompletion(ctx, &ChatPayload{Model: "m"})
	require.NoError(t, err)

	cancel()
	_, readErr := io.ReadAll(body)
	assert.Error(t, readErr)
	body.Close()

	select {
	case <-upstreamAborted:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream request was not aborted after client cancellation")
	}
}

func TestTransportFailureIsNotAStatusError(t *testing.T) {
	// Nothing listens here.
	client := New(Config{BaseURL: "http://127.0.0.1:1", APIKey: "k"})

	_, err := client.ListModels(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

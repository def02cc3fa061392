package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(serverURL string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = serverURL
	cfg.Model = "test-model"
	cfg.APIKey = "test-key"
	cfg.TimeoutMs = 2000
	return cfg
}

func TestClassify_NestedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/test-model", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[[{"label":"LABEL_2","score":0.91},{"label":"LABEL_1","score":0.06},{"label":"LABEL_0","score":0.03}]]`))
	}))
	defer server.Close()

	client := NewInferenceClient(testConfig(server.URL), NoopObserver{})
	scores, err := client.Classify(context.Background(), "great quarter")

	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, "LABEL_2", scores[0].Label)
	assert.InDelta(t, 0.91, scores[0].Score, 1e-9)
}

func TestClassify_FlatResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"LABEL_0","score":0.7},{"label":"LABEL_1","score":0.3}]`))
	}))
	defer server.Close()

	client := NewInferenceClient(testConfig(server.URL), NoopObserver{})
	scores, err := client.Classify(context.Background(), "bad quarter")

	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "LABEL_0", scores[0].Label)
}

func TestClassify_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"model is loading"}`))
	}))
	defer server.Close()

	client := NewInferenceClient(testConfig(server.URL), NoopObserver{})
	_, err := client.Classify(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestClassify_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[]]`))
	}))
	defer server.Close()

	client := NewInferenceClient(testConfig(server.URL), NoopObserver{})
	_, err := client.Classify(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestClassify_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewInferenceClient(testConfig(server.URL), NoopObserver{})
	_, err := client.Classify(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassify_Disabled(t *testing.T) {
	client := NewInferenceClient(DefaultConfig(), NoopObserver{})
	_, err := client.Classify(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrDisabled)
}

func TestClassify_ObserverReceivesEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"LABEL_1","score":1.0}]]`))
	}))
	defer server.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewInferenceClient(testConfig(server.URL), obs)
	_, err := client.Classify(context.Background(), "anything")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "test-model", events[0].Model)
	assert.True(t, events[0].Success)
	assert.Empty(t, events[0].ErrorCode)
}

func TestClassify_ObserverRecordsErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewInferenceClient(testConfig(server.URL), obs)
	_, err := client.Classify(context.Background(), "anything")

	require.Error(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "UNAVAILABLE", events[0].ErrorCode)
}

func TestAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewInferenceClient(testConfig(server.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	disabled := NewInferenceClient(DefaultConfig(), NoopObserver{})
	assert.False(t, disabled.Available(context.Background()))
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }

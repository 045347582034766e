package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentSendsSchemaAndKey(t *testing.T) {
	var captured GenerateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":"},{"text":"true}"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))
	schema := &Schema{Type: TypeObject, Properties: map[string]*Schema{"ok": {Type: TypeBoolean}}, Required: []string{"ok"}}

	resp, err := client.GenerateContent(context.Background(), "gemini-test", GenerateContentRequest{
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: "hello"}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: "be brief"}}},
		GenerationConfig: &GenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
			Temperature:      Float(0.5),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ok":true}`, resp.Text())
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	require.NotNil(t, captured.GenerationConfig.Temperature)
	assert.Equal(t, 0.5, *captured.GenerationConfig.Temperature)
	assert.Equal(t, TypeObject, captured.GenerationConfig.ResponseSchema.Type)
	assert.Equal(t, "be brief", captured.SystemInstruction.Parts[0].Text)
}

func TestGenerateContentWithoutKeyNeverCallsAPI(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient("", WithBaseURL(srv.URL))
	assert.False(t, client.Configured())

	_, err := client.GenerateContent(context.Background(), "gemini-test", GenerateContentRequest{})
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.False(t, called)
}

func TestGenerateContentSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))
	_, err := client.GenerateContent(context.Background(), "gemini-test", GenerateContentRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateContentHonoursRequestsPerMinute(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL), WithRequestsPerMinute(1))

	_, err := client.GenerateContent(context.Background(), "gemini-test", GenerateContentRequest{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.GenerateContent(ctx, "gemini-test", GenerateContentRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
	assert.Equal(t, int32(1), calls.Load())
}

func TestResponseTextEmpty(t *testing.T) {
	var resp *GenerateContentResponse
	assert.Equal(t, "", resp.Text())
	assert.Equal(t, "", (&GenerateContentResponse{}).Text())
}

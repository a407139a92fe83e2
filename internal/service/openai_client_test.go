package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"holistic-health-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *openAIClient {
	return newOpenAIClient(config.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-5",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestCreateStructuredCompletion_Success(t *testing.T) {
	var gotRequest chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"ok\": true}"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	content, err := client.CreateStructuredCompletion(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, content)

	assert.Equal(t, "gpt-5", gotRequest.Model)
	assert.Equal(t, "json_object", gotRequest.ResponseFormat.Type)
	assert.Equal(t, defaultMaxCompletionTokens, gotRequest.MaxCompletionTokens)
	require.Len(t, gotRequest.Messages, 2)
	assert.Equal(t, "system", gotRequest.Messages[0].Role)
	assert.Equal(t, "user", gotRequest.Messages[1].Role)
}

func TestCreateStructuredCompletion_UpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateStructuredCompletion(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCreateStructuredCompletion_ErrorPreviewStaysValidUTF8(t *testing.T) {
	// 199 ASCII bytes followed by multi-byte runes puts the 200-byte
	// truncation point inside a rune.
	body := strings.Repeat("e", 199) + "日本語のエラー内容"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateStructuredCompletion(context.Background(), "system", "user")
	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.Contains(t, err.Error(), "500")
}

func TestCreateStructuredCompletion_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateStructuredCompletion(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestCreateStructuredCompletion_MissingAPIKey(t *testing.T) {
	client := newOpenAIClient(config.OpenAIConfig{Model: "gpt-5", BaseURL: "http://localhost:0", Timeout: time.Second})
	_, err := client.CreateStructuredCompletion(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestCreateStructuredCompletion_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.CreateStructuredCompletion(ctx, "system", "user")
	assert.Error(t, err)
}

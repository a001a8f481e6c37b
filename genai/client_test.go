package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGenerateServer fakes the generateContent endpoint, echoing back a
// canned candidate and recording the prompt it received.
func newGenerateServer(t *testing.T, text string, prompts *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.NotEmpty(t, r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		*prompts = append(*prompts, req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		})
	}))
}

func newTestGenClient(serverURL string) *Client {
	return NewClient("test-key", &ClientConfig{BaseURL: serverURL})
}

func TestGenerate(t *testing.T) {
	var prompts []string
	server := newGenerateServer(t, "generated text", &prompts)
	defer server.Close()

	text, err := newTestGenClient(server.URL).Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "generated text", text)
	assert.Equal(t, []string{"hello"}, prompts)
}

func TestSummarizeWrapsPrompt(t *testing.T) {
	var prompts []string
	server := newGenerateServer(t, "summary", &prompts)
	defer server.Close()

	_, err := newTestGenClient(server.URL).Summarize(context.Background(), "note content")
	require.NoError(t, err)

	require.Len(t, prompts, 1)
	assert.True(t, strings.HasSuffix(prompts[0], "note content"))
	assert.Contains(t, prompts[0], "scrapbox format")
}

func TestQuestionWrapsPrompt(t *testing.T) {
	var prompts []string
	server := newGenerateServer(t, "questions", &prompts)
	defer server.Close()

	_, err := newTestGenClient(server.URL).Question(context.Background(), "note content")
	require.NoError(t, err)

	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "3 questions in English")
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestGenClient(server.URL).Generate(context.Background(), "hello")
	assert.Error(t, err)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	_, err := newTestGenClient(server.URL).Generate(context.Background(), "hello")
	assert.Error(t, err)
}

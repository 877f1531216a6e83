package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		assert.Len(t, req.Messages, 2)

		w.WriteHeader(status)
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(t *testing.T, url string) *ChatGPT {
	t.Helper()
	c, err := New(Config{APIKey: "test-key", BaseURL: url + "/v1/", Model: "test-model"})
	require.NoError(t, err)
	return c
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestGenerateQuests(t *testing.T) {
	content := `{"quests":[{"title":"Grid Garden","description":"Lay out a page with CSS grid","points":"25","difficulty":"medium","category":"css"},{"title":"Walk","points":15}]}`
	srv := newTestServer(t, http.StatusOK, content)
	defer srv.Close()

	drafts, err := newTestClient(t, srv.URL).GenerateQuests(t.Context())
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Grid Garden", drafts[0].Title)
	assert.EqualValues(t, 25, drafts[0].Points)
	assert.Equal(t, "css", drafts[0].Category)
	assert.EqualValues(t, 15, drafts[1].Points)
	assert.Empty(t, drafts[1].Category)
}

func TestGenerateQuestsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		content string
	}{
		{name: "not json", status: http.StatusOK, content: "sure, here are some quests"},
		{name: "missing quests field", status: http.StatusOK, content: `{"items":[]}`},
		{name: "quests not a list", status: http.StatusOK, content: `{"quests":"none"}`},
		{name: "empty content", status: http.StatusOK, content: ""},
		{name: "server error", status: http.StatusInternalServerError, content: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.content)
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).GenerateQuests(t.Context())
			assert.Error(t, err)
		})
	}
}

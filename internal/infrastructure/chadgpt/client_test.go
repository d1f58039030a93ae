package chadgpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gdugdh24/godate-backend/internal/config"
	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestAskSuccess(t *testing.T) {
	var gotPath string
	var gotBody askRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(askResponse{
			IsSuccess:      true,
			Response:       "маршрут готов",
			UsedWordsCount: 17,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	completion, err := client.Ask(context.Background(), "gpt-4o-mini", "составь маршрут")
	require.NoError(t, err)

	assert.Equal(t, "/api/public/gpt-4o-mini", gotPath)
	assert.Equal(t, "составь маршрут", gotBody.Message)
	assert.Equal(t, "test-key", gotBody.APIKey)
	assert.Equal(t, "маршрут готов", completion.Text)
	assert.Equal(t, 17, completion.UsedWords)
}

func TestAskProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(askResponse{
			IsSuccess:    false,
			ErrorMessage: "лимит исчерпан",
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Ask(context.Background(), "gpt-4o-mini", "вопрос")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "лимит исчерпан", providerErr.Message)
}

func TestAskProviderFailureDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(askResponse{IsSuccess: false})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Ask(context.Background(), "gpt-4o-mini", "вопрос")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "AI ошибка", providerErr.Message)
}

func TestAskServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Ask(context.Background(), "gpt-4o-mini", "вопрос")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestAskMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Ask(context.Background(), "gpt-4o-mini", "вопрос")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestAskUnreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.Ask(context.Background(), "gpt-4o-mini", "вопрос")
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

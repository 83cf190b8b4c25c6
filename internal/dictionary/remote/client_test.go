package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TURKZEN/english-turkish-dictionary/internal/dictionary"
)

func TestClient_Fetch(t *testing.T) {
	const body = `[{"word": "cat", "type": "noun", "tr": "kedi"}]`

	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantBody          string
		wantSize          int64
		wantStatusCode    int
		wantErrorContains string
	}{
		{
			name: "success",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/dictionary.json", r.URL.Path)
				assert.Equal(t, "sozluk-test", r.Header.Get("User-Agent"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, body)
			},
			wantBody: body,
			wantSize: int64(len(body)),
		},
		{
			name: "not found",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				http.Error(w, "no such file", http.StatusNotFound)
			},
			wantStatusCode:    http.StatusNotFound,
			wantErrorContains: "no such file",
		},
		{
			name: "server error",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatusCode:    http.StatusInternalServerError,
			wantErrorContains: "status code 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient("sozluk-test")
			url := server.URL + "/dictionary.json"
			got, size, err := client.Fetch(context.Background(), url)

			if tt.wantStatusCode != 0 {
				require.Error(t, err)
				assert.Nil(t, got)

				var fetchErr *dictionary.FetchError
				require.ErrorAs(t, err, &fetchErr)
				assert.Equal(t, url, fetchErr.URL)
				assert.Equal(t, tt.wantStatusCode, fetchErr.StatusCode)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
				return
			}

			require.NoError(t, err)
			defer func() {
				_ = got.Close()
			}()
			assert.Equal(t, tt.wantSize, size)
			contents, err := io.ReadAll(got)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(contents))
		})
	}
}

func TestClient_FetchConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/dictionary.json"
	server.Close()

	_, _, err := NewClient("").Fetch(context.Background(), url)

	var fetchErr *dictionary.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 0, fetchErr.StatusCode)
}

func TestClient_FetchCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "[]")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewClient("").Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

package jira

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a fake Jira server.
func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		site:       "example.atlassian.net",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestRequestNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	payload, err := client.request(http.MethodDelete, "/issueLink/10001", nil)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestRequestEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	payload, err := client.request(http.MethodPost, "/issueLink", map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestRequestSendsJSONHeaders(t *testing.T) {
	var gotContentType, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	_, err := client.request(http.MethodGet, "/myself", nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
}

func TestRequestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "errorMessages envelope",
			status:      http.StatusNotFound,
			body:        `{"errorMessages":["Issue does not exist or you do not have permission to see it."]}`,
			wantMessage: "Issue does not exist or you do not have permission to see it.",
		},
		{
			name:        "first of several messages",
			status:      http.StatusBadRequest,
			body:        `{"errorMessages":["first","second"]}`,
			wantMessage: "first",
		},
		{
			name:        "non-JSON body falls back to status text",
			status:      http.StatusInternalServerError,
			body:        `<html>boom</html>`,
			wantMessage: "Internal Server Error",
		},
		{
			name:        "JSON without errorMessages falls back to status text",
			status:      http.StatusUnauthorized,
			body:        `{"message":"nope"}`,
			wantMessage: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(srv)

			_, err := client.request(http.MethodGet, "/issue/PROJ-1", nil)
			require.Error(t, err)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantMessage, reqErr.Message)
			assert.Contains(t, reqErr.Error(), tt.wantMessage)
		})
	}
}

func TestGetRejectsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"key": [not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	var out map[string]any
	err := client.get("/issue/PROJ-1", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected response")
}

func TestMyself(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/myself", r.URL.Path)
		w.Write([]byte(`{
			"accountId": "5b10a2844c20165700ede21g",
			"displayName": "Mia Krystof",
			"emailAddress": "mia@example.com",
			"active": true
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv)

	user, err := client.Myself()
	require.NoError(t, err)
	assert.Equal(t, "Mia Krystof", user.DisplayName)
	assert.Equal(t, "5b10a2844c20165700ede21g", user.AccountID)
	assert.Equal(t, "mia@example.com", user.EmailAddress)
	assert.True(t, user.Active)
}

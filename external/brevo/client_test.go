package brevo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendEncodesMessage(t *testing.T) {
	var received sendRequest
	var apiKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v3/smtp/email", r.URL.Path)
		apiKey = r.Header.Get("api-key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := New(ts.URL, "test-key", "Furever", "noreply@furever.example")
	err := client.Send("owner@example.com", "Binayak", "Vaccination Reminder", "<p>due soon</p>")
	assert.NoError(t, err)

	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, "noreply@furever.example", received.Sender.Email)
	assert.Equal(t, []contact{{Name: "Binayak", Email: "owner@example.com"}}, received.To)
	assert.Equal(t, "Vaccination Reminder", received.Subject)
	assert.Equal(t, "<p>due soon</p>", received.HTMLContent)
}

func TestSendErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := New(ts.URL, "bad-key", "Furever", "noreply@furever.example")
	err := client.Send("owner@example.com", "Binayak", "subject", "content")
	assert.Error(t, err)
}

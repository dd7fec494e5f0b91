package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPSubmitter_Defaults(t *testing.T) {
	s, err := NewHTTPSubmitter(HTTPConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultURL, s.url)
	assert.Equal(t, DefaultTimeout, s.client.Timeout)
}

func TestNewHTTPSubmitter_InvalidURL(t *testing.T) {
	_, err := NewHTTPSubmitter(HTTPConfig{URL: "://missing-scheme"})
	require.ErrorIs(t, err, ErrInvalidURL)

	_, err = NewHTTPSubmitter(HTTPConfig{URL: "ftp://example.com/upload"})
	require.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestHTTPSubmitter_Submit(t *testing.T) {
	var gotMethod, gotContentType, gotSignature, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotSignature = r.Header.Get("Signature")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"value":"accepted"}`))
	}))
	defer server.Close()

	s, err := NewHTTPSubmitter(HTTPConfig{URL: server.URL, Client: server.Client()})
	require.NoError(t, err)

	receipt, err := s.Submit(context.Background(), []byte(`{"doc_id":"42"}`), "sig-value")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "sig-value", gotSignature)
	assert.Equal(t, `{"doc_id":"42"}`, gotBody)

	assert.True(t, receipt.OK())
	assert.Equal(t, http.StatusOK, receipt.StatusCode)
	assert.Equal(t, `{"value":"accepted"}`, string(receipt.Body))
}

func TestHTTPSubmitter_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error_message":"bad document"}`))
	}))
	defer server.Close()

	s, err := NewHTTPSubmitter(HTTPConfig{URL: server.URL, Client: server.Client()})
	require.NoError(t, err)

	// A non-2xx status is a reported outcome, not a transport error.
	receipt, err := s.Submit(context.Background(), []byte(`{}`), "sig")
	require.NoError(t, err)
	assert.False(t, receipt.OK())
	assert.Equal(t, http.StatusUnprocessableEntity, receipt.StatusCode)
	assert.Contains(t, string(receipt.Body), "bad document")
}

func TestHTTPSubmitter_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before submitting

	s, err := NewHTTPSubmitter(HTTPConfig{URL: server.URL})
	require.NoError(t, err)

	receipt, err := s.Submit(context.Background(), []byte(`{}`), "sig")
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Nil(t, receipt)
}

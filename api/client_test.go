package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRelaysCookieHeader(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Cart(context.Background(), "session=abc; theme=dark")

	require.NoError(t, err)
	assert.Equal(t, "session=abc; theme=dark", gotCookie)
}

func TestDecodeErrorPrefersErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Not enough stock","message":"ignored"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).AddToCart(context.Background(), "session=abc", 1, 99)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Not enough stock", apiErr.Message)
}

func TestDecodeErrorFallsBackToMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Quantity must be positive"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).AddToCart(context.Background(), "session=abc", 1, -1)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Quantity must be positive", apiErr.Message)
}

func TestDecodeErrorWithEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).RemoveCartItem(context.Background(), "session=abc", 1)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&Error{Status: http.StatusUnauthorized}))
	assert.False(t, IsUnauthorized(&Error{Status: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(errors.New("dial tcp: connection refused")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Not enough stock", Message(&Error{Status: 409, Message: "Not enough stock"}, "fallback"))
	assert.Equal(t, "fallback", Message(&Error{Status: 502}, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("timeout"), "fallback"))
}

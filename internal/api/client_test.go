package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL)
	var out map[string]any
	if err := client.Do(context.Background(), http.MethodGet, "/users/me", "tok123", nil, &out); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want %q", gotContentType, "application/json")
	}
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hasRequestID bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		hasRequestID = r.Header.Get("X-Request-ID") != ""
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL)
	if err := client.Do(context.Background(), http.MethodGet, "/habits/", "", nil, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
	if !hasRequestID {
		t.Error("expected an X-Request-ID header")
	}
}

func TestDo_DecodesServerDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Incorrect email or password"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Do(context.Background(), http.MethodPost, "/auth/login/email", "", map[string]string{"email": "a@b.com"}, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusUnauthorized)
	}
	if apiErr.Detail != "Incorrect email or password" {
		t.Errorf("Detail = %q, want server message", apiErr.Detail)
	}
}

func TestDo_UnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.Do(context.Background(), http.MethodGet, "/habits/", "tok", nil, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiErr.Detail != "Network error" {
		t.Errorf("Detail = %q, want generic fallback", apiErr.Detail)
	}
}

func TestDo_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(server.URL)
	err := client.Do(context.Background(), http.MethodGet, "/habits/", "", nil, nil)
	if err == nil {
		t.Fatal("expected a transport error")
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an *Error, got %v", apiErr)
	}
}

func TestDo_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token": "a", "refresh_token": "r"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	var out struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := client.Do(context.Background(), http.MethodPost, "/auth/login/email", "", nil, &out); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if out.AccessToken != "a" || out.RefreshToken != "r" {
		t.Errorf("decoded %+v, want tokens a/r", out)
	}
}

package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["message"] != "سلام" {
			t.Errorf("message = %q", req["message"])
		}
		json.NewEncoder(w).Encode(ChatResponse{
			Intent:         "greeting",
			Response:       "أهلاً وسهلاً بيك",
			Language:       "dz",
			Source:         "keyword",
			ConversationID: "conv-1",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Chat(context.Background(), "سلام", "")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Intent != "greeting" || resp.Source != "keyword" || resp.ConversationID != "conv-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestChatNon2xxCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Message too long (max 4000 characters)"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Chat(context.Background(), "x", "")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.Status)
	}
	if apiErr.Error() != "Message too long (max 4000 characters)" {
		t.Fatalf("detail = %q", apiErr.Error())
	}
}

func TestChatNon2xxWithoutBodyFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Chat(context.Background(), "x", "")
	if err == nil || err.Error() != "HTTP error 500" {
		t.Fatalf("err = %v, want generic HTTP error 500", err)
	}
}

func TestAuthLogicalFailureBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthResponse{Success: false, Error: "Invalid email or password"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "a@b.c", "nope")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Detail != "Invalid email or password" {
		t.Fatalf("detail = %q", apiErr.Detail)
	}
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(AuthResponse{
			Success:      true,
			User:         &User{ID: "u1", Email: "a@b.c", Name: "A"},
			AccessToken:  "at",
			RefreshToken: "rt",
		})
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User == nil || resp.User.ID != "u1" || resp.AccessToken != "at" {
		t.Fatalf("unexpected auth response: %+v", resp)
	}
}

func TestMeSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(User{ID: "u1", Email: "a@b.c"})
	}))
	defer srv.Close()

	u, err := New(srv.URL).Me(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("user = %+v", u)
	}
}

func TestMeUnauthorizedIsAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Me(context.Background(), "expired")
	if !IsAuthFailure(err) {
		t.Fatalf("err = %v, want auth failure", err)
	}
}

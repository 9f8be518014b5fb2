// Package apiclient is the stateless HTTP wrapper over the Amal
// backend. One request/response round trip per call, JSON bodies, no
// retry or timeout policy of its own; that is the calling store's
// business. All endpoints signal failure the same way: a non-nil
// error, carrying the server's detail message when one was provided.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Error is a failed backend call: a transport-level non-2xx or a
// logical {success:false} auth response.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error %d", e.Status)
}

// IsAuthFailure reports whether err is a backend rejection with a 401
// or 403 status.
func IsAuthFailure(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

type chatReq struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// Chat sends one user message. conversationID may be empty; the
// backend then opens a new conversation and returns its id.
func (c *Client) Chat(ctx context.Context, message, conversationID string) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.post(ctx, "/chat", chatReq{Message: message, ConversationID: conversationID}, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health checks backend availability and model status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, "/health", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

func (c *Client) Signup(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/signup", signupReq{Email: email, Password: password, Name: name})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/login", loginReq{Email: email, Password: password})
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/forgot-password", forgotPasswordReq{Email: email})
}

type resetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/reset-password", resetPasswordReq{Token: token, NewPassword: newPassword})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/refresh", refreshReq{RefreshToken: refreshToken})
}

type logoutReq struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout revokes the refresh token server-side. Local state cleanup is
// the auth store's job regardless of the outcome here.
func (c *Client) Logout(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	return c.auth(ctx, "/auth/logout", logoutReq{RefreshToken: refreshToken})
}

// Me returns the user the access token belongs to.
func (c *Client) Me(ctx context.Context, accessToken string) (*User, error) {
	var out User
	if err := c.get(ctx, "/auth/me", accessToken, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// auth posts to an /auth/* endpoint and folds the endpoint's
// {success:false, error} convention into the uniform *Error return, so
// stores branch on exactly one failure path.
func (c *Client) auth(ctx context.Context, path string, body any) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, path, body, "", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		detail := out.Error
		if detail == "" {
			detail = out.Message
		}
		return nil, &Error{Status: http.StatusOK, Detail: detail}
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body any, bearer string, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path, bearer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.HTTP == nil {
		return errors.New("apiclient: http client is nil")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// FastAPI-style backends say {"detail": ...}, the Node
		// placeholder said {"error": ...}; take whichever is set.
		var failure struct {
			Detail string `json:"detail"`
			ErrMsg string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		detail := failure.Detail
		if detail == "" {
			detail = failure.ErrMsg
		}
		return &Error{Status: resp.StatusCode, Detail: detail}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Package authstore is the client-side session state machine: guest
// until proven otherwise, authenticated only while a user and access
// token are both held, with the token bundle persisted locally and
// revalidated at startup.
package authstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amal-dz/amal/internal/apiclient"
	"github.com/amal-dz/amal/internal/localstore"
)

// StorageKey is the fixed durable-storage key for the persisted auth
// bundle.
const StorageKey = "amal_auth"

const (
	connectionErrMsg = "Connection error. Please try again."
	loginFailedMsg   = "Login failed"
	signupFailedMsg  = "Signup failed"
	resetFailedMsg   = "Reset failed"
)

type User = apiclient.User

// API is the slice of the backend client the store depends on; tests
// inject fakes.
type API interface {
	Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, error)
	Signup(ctx context.Context, email, password, name string) (*apiclient.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (*apiclient.AuthResponse, error)
	ResetPassword(ctx context.Context, token, newPassword string) (*apiclient.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*apiclient.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) (*apiclient.AuthResponse, error)
	Me(ctx context.Context, accessToken string) (*apiclient.User, error)
}

// Snapshot is an immutable view of the store state.
// IsAuthenticated implies User != nil and AccessToken != "".
type Snapshot struct {
	User            *User
	AccessToken     string
	RefreshToken    string
	IsAuthenticated bool
	IsGuest         bool
	IsLoading       bool
	Err             string
}

// persistedAuth is the partial serialization written to durable
// storage. Transient fields (loading, error) are never persisted.
type persistedAuth struct {
	User            *User  `json:"user"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

type Store struct {
	mu     sync.Mutex
	state  Snapshot
	api    API
	local  *localstore.Store
	nextID int
	subs   map[int]func(Snapshot)
}

func New(api API, local *localstore.Store) *Store {
	return &Store{
		state: Snapshot{IsGuest: true},
		api:   api,
		local: local,
		subs:  make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every state change and returns
// an unsubscribe function.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Login exchanges credentials for a session. On logical failure the
// previous auth state is left untouched and Err carries the server's
// message; on transport failure Err is a generic connection error.
// IsLoading is cleared on every path.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.beginOperation()
	resp, err := s.api.Login(ctx, email, password)
	return s.finishCredentialOperation(ctx, resp, err, loginFailedMsg)
}

// Signup registers a new account; the protocol is identical to Login.
func (s *Store) Signup(ctx context.Context, email, password, name string) error {
	s.beginOperation()
	resp, err := s.api.Signup(ctx, email, password, name)
	return s.finishCredentialOperation(ctx, resp, err, signupFailedMsg)
}

// Logout revokes the refresh token (best effort) and drops all local
// auth state back to guest.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	refresh := s.state.RefreshToken
	s.mu.Unlock()

	if refresh != "" {
		// Revocation failure must not keep the user signed in locally.
		_, _ = s.api.Logout(ctx, refresh)
	}
	if s.local != nil {
		_ = s.local.Delete(ctx, StorageKey)
	}
	s.commit(Snapshot{IsGuest: true})
}

// ForgotPassword requests a reset email. The returned message is the
// server's user-facing text (uniform whether or not the email exists).
func (s *Store) ForgotPassword(ctx context.Context, email string) (string, error) {
	s.beginOperation()

	resp, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		s.setFailure(err, resetFailedMsg)
		return "", err
	}

	s.mu.Lock()
	s.state.IsLoading = false
	s.state.Err = ""
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
	return resp.Message, nil
}

// ResetPassword consumes a reset token. It does not sign the user in.
func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) error {
	s.beginOperation()

	_, err := s.api.ResetPassword(ctx, token, newPassword)
	if err != nil {
		s.setFailure(err, resetFailedMsg)
		return err
	}

	s.mu.Lock()
	s.state.IsLoading = false
	s.state.Err = ""
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
	return nil
}

// LoadStoredAuth restores a persisted session at startup. Strict
// fallback chain: validate the access token against /auth/me, then try
// the refresh token, then clear everything back to guest. Each step
// runs only if the previous one is absent or failed.
func (s *Store) LoadStoredAuth(ctx context.Context) error {
	if s.local == nil {
		return nil
	}

	raw, ok, err := s.local.Get(ctx, StorageKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var stored persistedAuth
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		_ = s.local.Delete(ctx, StorageKey)
		return nil
	}

	if stored.AccessToken != "" && !visiblyExpired(stored.AccessToken) {
		if user, err := s.api.Me(ctx, stored.AccessToken); err == nil && user != nil {
			s.commit(Snapshot{
				User:            user,
				AccessToken:     stored.AccessToken,
				RefreshToken:    stored.RefreshToken,
				IsAuthenticated: true,
			})
			return nil
		}
	}

	if stored.RefreshToken != "" {
		if resp, err := s.api.Refresh(ctx, stored.RefreshToken); err == nil && resp.AccessToken != "" {
			next := Snapshot{
				User:            stored.User,
				AccessToken:     resp.AccessToken,
				RefreshToken:    resp.RefreshToken,
				IsAuthenticated: stored.User != nil,
				IsGuest:         stored.User == nil,
			}
			if err := s.persist(ctx, next); err != nil {
				return err
			}
			s.commit(next)
			return nil
		}
	}

	_ = s.local.Delete(ctx, StorageKey)
	s.commit(Snapshot{IsGuest: true})
	return nil
}

func (s *Store) beginOperation() {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Err = ""
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// finishCredentialOperation is the shared tail of Login and Signup.
func (s *Store) finishCredentialOperation(ctx context.Context, resp *apiclient.AuthResponse, err error, genericMsg string) error {
	if err != nil {
		s.setFailure(err, genericMsg)
		return err
	}
	if resp.User == nil || resp.AccessToken == "" {
		// Structurally successful but incomplete; treat as a logical
		// failure and leave prior auth state alone.
		err := &apiclient.Error{Detail: genericMsg}
		s.setFailure(err, genericMsg)
		return err
	}

	next := Snapshot{
		User:            resp.User,
		AccessToken:     resp.AccessToken,
		RefreshToken:    resp.RefreshToken,
		IsAuthenticated: true,
	}
	if err := s.persist(ctx, next); err != nil {
		s.setFailure(err, genericMsg)
		return err
	}
	s.commit(next)
	return nil
}

// setFailure records an error message without touching the previous
// auth fields, clearing IsLoading.
func (s *Store) setFailure(err error, genericMsg string) {
	msg := connectionErrMsg
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		msg = apiErr.Detail
		if msg == "" {
			msg = genericMsg
		}
	}

	s.mu.Lock()
	s.state.IsLoading = false
	s.state.Err = msg
	snap := s.state
	s.mu.Unlock()
	s.publish(snap)
}

// commit replaces the auth fields wholesale and clears transients.
func (s *Store) commit(next Snapshot) {
	next.IsLoading = false
	next.Err = ""
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
	s.publish(next)
}

func (s *Store) persist(ctx context.Context, snap Snapshot) error {
	if s.local == nil {
		return nil
	}
	b, err := json.Marshal(persistedAuth{
		User:            snap.User,
		AccessToken:     snap.AccessToken,
		RefreshToken:    snap.RefreshToken,
		IsAuthenticated: snap.IsAuthenticated,
	})
	if err != nil {
		return err
	}
	return s.local.Set(ctx, StorageKey, string(b))
}

func (s *Store) publish(snap Snapshot) {
	s.mu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// visiblyExpired reports whether tok is a well-formed JWT whose exp
// claim has already passed. Tokens we cannot parse are not "visibly"
// expired; the backend gets the final say via /auth/me.
func visiblyExpired(tok string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

package authstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/amal-dz/amal/internal/apiclient"
	"github.com/amal-dz/amal/internal/localstore"
)

// fakeAPI is a scripted backend. Each field, when set, overrides the
// default behavior for that call.
type fakeAPI struct {
	loginFn   func(email, password string) (*apiclient.AuthResponse, error)
	signupFn  func(email, password, name string) (*apiclient.AuthResponse, error)
	forgotFn  func(email string) (*apiclient.AuthResponse, error)
	resetFn   func(token, newPassword string) (*apiclient.AuthResponse, error)
	refreshFn func(refreshToken string) (*apiclient.AuthResponse, error)
	meFn      func(accessToken string) (*apiclient.User, error)

	logoutCalls  int
	refreshCalls int
	meCalls      int
}

var errDown = errors.New("dial tcp: connection refused")

func (f *fakeAPI) Login(_ context.Context, email, password string) (*apiclient.AuthResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return nil, errDown
}

func (f *fakeAPI) Signup(_ context.Context, email, password, name string) (*apiclient.AuthResponse, error) {
	if f.signupFn != nil {
		return f.signupFn(email, password, name)
	}
	return nil, errDown
}

func (f *fakeAPI) ForgotPassword(_ context.Context, email string) (*apiclient.AuthResponse, error) {
	if f.forgotFn != nil {
		return f.forgotFn(email)
	}
	return nil, errDown
}

func (f *fakeAPI) ResetPassword(_ context.Context, token, newPassword string) (*apiclient.AuthResponse, error) {
	if f.resetFn != nil {
		return f.resetFn(token, newPassword)
	}
	return nil, errDown
}

func (f *fakeAPI) Refresh(_ context.Context, refreshToken string) (*apiclient.AuthResponse, error) {
	f.refreshCalls++
	if f.refreshFn != nil {
		return f.refreshFn(refreshToken)
	}
	return nil, errDown
}

func (f *fakeAPI) Logout(_ context.Context, refreshToken string) (*apiclient.AuthResponse, error) {
	f.logoutCalls++
	return &apiclient.AuthResponse{Success: true}, nil
}

func (f *fakeAPI) Me(_ context.Context, accessToken string) (*apiclient.User, error) {
	f.meCalls++
	if f.meFn != nil {
		return f.meFn(accessToken)
	}
	return nil, errDown
}

func okLogin(user *apiclient.User) func(string, string) (*apiclient.AuthResponse, error) {
	return func(string, string) (*apiclient.AuthResponse, error) {
		return &apiclient.AuthResponse{
			Success:      true,
			User:         user,
			AccessToken:  "at-1",
			RefreshToken: "rt-1",
		}, nil
	}
}

func newTestStore(t *testing.T, api API) (*Store, *localstore.Store) {
	t.Helper()
	local, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open localstore: %v", err)
	}
	return New(api, local), local
}

func checkInvariant(t *testing.T, snap Snapshot) {
	t.Helper()
	if snap.IsAuthenticated && (snap.User == nil || snap.AccessToken == "") {
		t.Fatalf("authenticated without user/token: %+v", snap)
	}
	if snap.IsLoading {
		t.Fatalf("IsLoading left set after operation: %+v", snap)
	}
}

func TestLoginSuccessCommitsAndPersists(t *testing.T) {
	user := &apiclient.User{ID: "u1", Email: "sara@example.com", Name: "Sara"}
	api := &fakeAPI{loginFn: okLogin(user)}
	store, local := newTestStore(t, api)
	ctx := context.Background()

	if err := store.Login(ctx, "sara@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if !snap.IsAuthenticated || snap.IsGuest {
		t.Fatalf("not authenticated after login: %+v", snap)
	}
	if snap.AccessToken != "at-1" || snap.RefreshToken != "rt-1" {
		t.Fatalf("tokens not committed: %+v", snap)
	}

	raw, ok, err := local.Get(ctx, StorageKey)
	if err != nil || !ok {
		t.Fatalf("persisted bundle missing (ok=%v err=%v)", ok, err)
	}
	var stored persistedAuth
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("persisted bundle not JSON: %v", err)
	}
	if stored.AccessToken != "at-1" || !stored.IsAuthenticated || stored.User == nil {
		t.Fatalf("persisted bundle incomplete: %+v", stored)
	}
}

func TestLoginLogicalFailureKeepsPriorState(t *testing.T) {
	user := &apiclient.User{ID: "u1", Email: "sara@example.com"}
	api := &fakeAPI{loginFn: okLogin(user)}
	store, _ := newTestStore(t, api)
	ctx := context.Background()

	if err := store.Login(ctx, "sara@example.com", "secret1"); err != nil {
		t.Fatalf("first login: %v", err)
	}

	api.loginFn = func(string, string) (*apiclient.AuthResponse, error) {
		return nil, &apiclient.Error{Status: 200, Detail: "Invalid email or password"}
	}
	if err := store.Login(ctx, "sara@example.com", "wrong"); err == nil {
		t.Fatal("expected error from failed login")
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if snap.Err != "Invalid email or password" {
		t.Fatalf("Err = %q", snap.Err)
	}
	if !snap.IsAuthenticated || snap.AccessToken != "at-1" {
		t.Fatalf("prior session lost on logical failure: %+v", snap)
	}
}

func TestLoginTransportFailureSetsGenericError(t *testing.T) {
	store, _ := newTestStore(t, &fakeAPI{})

	if err := store.Login(context.Background(), "a@b.c", "x"); err == nil {
		t.Fatal("expected transport error")
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if snap.Err != connectionErrMsg {
		t.Fatalf("Err = %q, want %q", snap.Err, connectionErrMsg)
	}
	if snap.IsAuthenticated {
		t.Fatal("authenticated after transport failure")
	}
}

func TestSignupIncompleteResponseIsLogicalFailure(t *testing.T) {
	api := &fakeAPI{signupFn: func(string, string, string) (*apiclient.AuthResponse, error) {
		return &apiclient.AuthResponse{Success: true}, nil
	}}
	store, _ := newTestStore(t, api)

	if err := store.Signup(context.Background(), "a@b.c", "secret1", "A"); err == nil {
		t.Fatal("expected error for incomplete response")
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if snap.IsAuthenticated {
		t.Fatal("authenticated on incomplete signup response")
	}
	if snap.Err != signupFailedMsg {
		t.Fatalf("Err = %q", snap.Err)
	}
}

func TestLogoutRevokesAndClears(t *testing.T) {
	user := &apiclient.User{ID: "u2", Email: "k@example.com"}
	api := &fakeAPI{loginFn: okLogin(user)}
	store, local := newTestStore(t, api)
	ctx := context.Background()

	if err := store.Login(ctx, "k@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	store.Logout(ctx)

	if api.logoutCalls != 1 {
		t.Fatalf("logout calls = %d", api.logoutCalls)
	}
	snap := store.Snapshot()
	checkInvariant(t, snap)
	if snap.IsAuthenticated || !snap.IsGuest || snap.User != nil || snap.AccessToken != "" {
		t.Fatalf("state not cleared: %+v", snap)
	}
	if _, ok, _ := local.Get(ctx, StorageKey); ok {
		t.Fatal("persisted bundle survived logout")
	}
}

func TestForgotPasswordReturnsServerMessage(t *testing.T) {
	const msg = "If that email is registered, a reset link has been sent."
	api := &fakeAPI{forgotFn: func(string) (*apiclient.AuthResponse, error) {
		return &apiclient.AuthResponse{Success: true, Message: msg}, nil
	}}
	store, _ := newTestStore(t, api)

	got, err := store.ForgotPassword(context.Background(), "whoever@example.com")
	if err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if got != msg {
		t.Fatalf("message = %q", got)
	}
	checkInvariant(t, store.Snapshot())
}

func TestResetPasswordDoesNotSignIn(t *testing.T) {
	api := &fakeAPI{resetFn: func(string, string) (*apiclient.AuthResponse, error) {
		return &apiclient.AuthResponse{Success: true, Message: "Password updated"}, nil
	}}
	store, _ := newTestStore(t, api)

	if err := store.ResetPassword(context.Background(), "tok", "newsecret"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	snap := store.Snapshot()
	checkInvariant(t, snap)
	if snap.IsAuthenticated {
		t.Fatal("reset password must not authenticate")
	}
}

func TestLoadStoredAuthValidAccessToken(t *testing.T) {
	user := &apiclient.User{ID: "u3", Email: "n@example.com", Name: "N"}
	api := &fakeAPI{meFn: func(tok string) (*apiclient.User, error) {
		if tok != "at-live" {
			return nil, &apiclient.Error{Status: 401, Detail: "Invalid token"}
		}
		return user, nil
	}}
	store, local := newTestStore(t, api)
	ctx := context.Background()

	b, _ := json.Marshal(persistedAuth{User: user, AccessToken: "at-live", RefreshToken: "rt-live", IsAuthenticated: true})
	if err := local.Set(ctx, StorageKey, string(b)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	if err := store.LoadStoredAuth(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if !snap.IsAuthenticated || snap.AccessToken != "at-live" {
		t.Fatalf("stored session not restored: %+v", snap)
	}
	if api.refreshCalls != 0 {
		t.Fatal("refresh attempted despite valid access token")
	}
}

func TestLoadStoredAuthFallsBackToRefresh(t *testing.T) {
	user := &apiclient.User{ID: "u4", Email: "r@example.com"}
	api := &fakeAPI{
		meFn: func(string) (*apiclient.User, error) {
			return nil, &apiclient.Error{Status: 401, Detail: "Token expired"}
		},
		refreshFn: func(rt string) (*apiclient.AuthResponse, error) {
			if rt != "rt-old" {
				return nil, &apiclient.Error{Status: 401, Detail: "Invalid refresh token"}
			}
			return &apiclient.AuthResponse{Success: true, AccessToken: "at-new", RefreshToken: "rt-new"}, nil
		},
	}
	store, local := newTestStore(t, api)
	ctx := context.Background()

	b, _ := json.Marshal(persistedAuth{User: user, AccessToken: "at-stale", RefreshToken: "rt-old", IsAuthenticated: true})
	if err := local.Set(ctx, StorageKey, string(b)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	if err := store.LoadStoredAuth(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if !snap.IsAuthenticated || snap.AccessToken != "at-new" || snap.RefreshToken != "rt-new" {
		t.Fatalf("refresh path did not commit new tokens: %+v", snap)
	}

	raw, ok, _ := local.Get(ctx, StorageKey)
	if !ok {
		t.Fatal("rotated bundle not persisted")
	}
	var stored persistedAuth
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("persisted bundle not JSON: %v", err)
	}
	if stored.AccessToken != "at-new" || stored.RefreshToken != "rt-new" {
		t.Fatalf("stale tokens persisted: %+v", stored)
	}
}

func TestLoadStoredAuthClearsToGuestWhenBothFail(t *testing.T) {
	store, local := newTestStore(t, &fakeAPI{
		meFn: func(string) (*apiclient.User, error) {
			return nil, &apiclient.Error{Status: 401, Detail: "Token expired"}
		},
		refreshFn: func(string) (*apiclient.AuthResponse, error) {
			return nil, &apiclient.Error{Status: 401, Detail: "Invalid refresh token"}
		},
	})
	ctx := context.Background()

	b, _ := json.Marshal(persistedAuth{User: &apiclient.User{ID: "u5", Email: "x@example.com"}, AccessToken: "at", RefreshToken: "rt", IsAuthenticated: true})
	if err := local.Set(ctx, StorageKey, string(b)); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	if err := store.LoadStoredAuth(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	snap := store.Snapshot()
	checkInvariant(t, snap)
	if snap.IsAuthenticated || !snap.IsGuest {
		t.Fatalf("expected guest after failed chain: %+v", snap)
	}
	if _, ok, _ := local.Get(ctx, StorageKey); ok {
		t.Fatal("dead bundle left in storage")
	}
}

func TestLoadStoredAuthNothingPersisted(t *testing.T) {
	store, _ := newTestStore(t, &fakeAPI{})

	if err := store.LoadStoredAuth(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	snap := store.Snapshot()
	checkInvariant(t, snap)
	if !snap.IsGuest {
		t.Fatalf("expected untouched guest state: %+v", snap)
	}
}

// TestInvariantAcrossOperationSequence drives the store through a mix
// of successes and failures and checks the auth invariant after every
// step.
func TestInvariantAcrossOperationSequence(t *testing.T) {
	user := &apiclient.User{ID: "u6", Email: "seq@example.com"}
	api := &fakeAPI{}
	store, _ := newTestStore(t, api)
	ctx := context.Background()

	fail := func(msg string) {
		api.loginFn = func(string, string) (*apiclient.AuthResponse, error) {
			return nil, &apiclient.Error{Status: 200, Detail: msg}
		}
	}

	steps := []func(){
		func() { fail("Invalid email or password"); _ = store.Login(ctx, "seq@example.com", "bad") },
		func() { api.loginFn = okLogin(user); _ = store.Login(ctx, "seq@example.com", "good") },
		func() { fail("Invalid email or password"); _ = store.Login(ctx, "seq@example.com", "bad") },
		func() { _, _ = store.ForgotPassword(ctx, "seq@example.com") },
		func() { store.Logout(ctx) },
		func() { api.loginFn = nil; _ = store.Login(ctx, "seq@example.com", "good") },
		func() { _ = store.LoadStoredAuth(ctx) },
	}

	var latest Snapshot
	unsub := store.Subscribe(func(s Snapshot) { latest = s })
	defer unsub()

	for i, step := range steps {
		step()
		snap := store.Snapshot()
		checkInvariant(t, snap)
		if latest != snap {
			// Snapshot contains a pointer but both come from the same
			// commit, so equality must hold field for field.
			t.Fatalf("step %d: subscriber saw %+v, snapshot %+v", i, latest, snap)
		}
	}
}

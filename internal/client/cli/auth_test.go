package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/smartautorental/rentctl/internal/client/models"
)

func TestAuthLogin_Success(t *testing.T) {
	store := newTestStore(t)
	var buf bytes.Buffer
	f := &fakeAPI{loginResp: models.AuthResponse{
		Token: "t1",
		User:  &models.User{Email: "a@b.com", Role: "USER"},
	}}

	var readyUser *models.User
	m := NewAuthModule(store, f, newTestNotifier(&buf), func(u models.User) { readyUser = &u })

	stubInputs(t, "  a@b.com  ", "x")

	if err := m.Login(context.Background(), nil, &buf); err != nil {
		t.Fatalf("Login err: %v", err)
	}

	if f.lastEmail != "a@b.com" {
		t.Fatalf("email not trimmed: %q", f.lastEmail)
	}
	if f.lastPassword != "x" {
		t.Fatalf("password altered: %q", f.lastPassword)
	}

	sess := store.Session()
	if sess.Token != "t1" || sess.User == nil || sess.User.Email != "a@b.com" {
		t.Fatalf("session not stored: %+v", sess)
	}
	if readyUser == nil || readyUser.Email != "a@b.com" {
		t.Fatalf("session-ready hook not fired: %+v", readyUser)
	}
}

func TestAuthLogin_FailureLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	var buf bytes.Buffer
	notify := newTestNotifier(&buf)
	f := &fakeAPI{loginErr: errors.New("Invalid credentials")}

	hookFired := false
	m := NewAuthModule(store, f, notify, func(models.User) { hookFired = true })

	stubInputs(t, "a@b.com", "wrong")

	if err := m.Login(context.Background(), nil, &buf); err == nil {
		t.Fatalf("want login error")
	}

	if store.Session().Active() {
		t.Fatalf("no partial session may be set on failure")
	}
	if hookFired {
		t.Fatalf("session-ready hook must not fire on failure")
	}
	notice, ok := notify.Current()
	if !ok || notice.Kind != NoticeError || notice.Message != "Invalid credentials" {
		t.Fatalf("expected error notice, got %+v ok=%v", notice, ok)
	}
}

func TestAuthLogout_ClearsUnconditionally(t *testing.T) {
	store := newTestStore(t)
	var buf bytes.Buffer
	m := NewAuthModule(store, &fakeAPI{}, newTestNotifier(&buf), nil)

	// logout with no session is still a clean no-op
	m.Logout()
	if store.Session().Active() {
		t.Fatalf("session must stay empty")
	}

	loginStore(t, store, "USER")
	m.Logout()
	if store.Session().Active() {
		t.Fatalf("session not cleared")
	}
}

func TestAuthStatus_Reactive(t *testing.T) {
	store := newTestStore(t)
	var buf bytes.Buffer
	m := NewAuthModule(store, &fakeAPI{}, newTestNotifier(&buf), nil)

	if m.Status() != "not authenticated" {
		t.Fatalf("initial status: %q", m.Status())
	}

	loginStore(t, store, "ADMIN")
	if !strings.Contains(m.Status(), "a@b.com") || !strings.Contains(m.Status(), "ADMIN") {
		t.Fatalf("status not re-rendered on state change: %q", m.Status())
	}

	store.ClearSession()
	if m.Status() != "not authenticated" {
		t.Fatalf("status after logout: %q", m.Status())
	}
}

func TestAuthSessionReadyHook_FiresOncePerTransition(t *testing.T) {
	store := newTestStore(t)
	var buf bytes.Buffer

	fired := 0
	NewAuthModule(store, &fakeAPI{}, newTestNotifier(&buf), func(models.User) { fired++ })

	loginStore(t, store, "USER")
	// further mutations while logged in must not re-fire the hook
	store.SetSelectedVehicleID(1)
	store.SetAvailabilityQuery(models.AvailabilityQuery{BranchID: "1"})

	if fired != 1 {
		t.Fatalf("hook fired %d times, want 1", fired)
	}

	store.ClearSession()
	loginStore(t, store, "USER")
	if fired != 2 {
		t.Fatalf("hook must fire again after a fresh login, fired=%d", fired)
	}
}

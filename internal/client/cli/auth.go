package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/smartautorental/rentctl/internal/client/api"
	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/client/state"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// AuthModule owns the authentication region: the reactive status text shown
// in the prompt, login, and logout. The session-ready hook fires whenever
// the session transitions from inactive to active (login or restored-session
// bootstrap both count through SetSession).
type AuthModule struct {
	store          *state.Store
	api            api.Client
	notify         *Notifier
	onSessionReady func(models.User)

	status    string
	wasActive bool
}

// NewAuthModule wires the module to the store and renders the status once so
// the prompt is correct before any mutation happens.
func NewAuthModule(store *state.Store, client api.Client, notify *Notifier, onSessionReady func(models.User)) *AuthModule {
	m := &AuthModule{store: store, api: client, notify: notify, onSessionReady: onSessionReady}

	store.Subscribe(func(snap state.Snapshot) {
		m.render(snap.Session)
		active := snap.Session.Active()
		if active && !m.wasActive && m.onSessionReady != nil {
			m.onSessionReady(*snap.Session.User)
		}
		m.wasActive = active
	})

	m.render(store.Session())
	m.wasActive = store.Session().Active()
	return m
}

func (m *AuthModule) render(sess models.Session) {
	if !sess.Active() {
		m.status = "not authenticated"
		return
	}

	status := fmt.Sprintf("%s, role %s", sess.User.Email, sess.User.Role)
	if exp, ok := sess.TokenExpiry(); ok {
		status += ", expires " + exp.Local().Format(time.Kitchen)
	}
	m.status = status
}

// Status is the current authentication line for the prompt.
func (m *AuthModule) Status() string {
	return m.status
}

// Login prompts for credentials and authenticates. The email is trimmed,
// the password taken as-is. On success the token and user are stored
// together, which fires every subscriber; on failure only a notice is shown
// and the state is left untouched.
func (m *AuthModule) Login(ctx context.Context, reader *bufio.Reader, w io.Writer) error {
	email, err := getSimpleText(reader, "Enter email", w)
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	password, err := getPassword(w)
	if err != nil {
		return err
	}

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}

	m.store.SetSession(resp.Token, resp.User)
	m.notify.Show("Logged in")
	return nil
}

// Logout clears the session unconditionally, whatever the prior status.
func (m *AuthModule) Logout() {
	m.store.ClearSession()
	m.notify.Show("Session closed")
}

// Package state implements the client-state store: a tab-wide observable
// holding the session, the last selected vehicle, and the last availability
// query. Every mutation persists the session fields and then notifies
// subscribers synchronously, in registration order, with an immutable
// snapshot of the post-mutation state.
//
// The store is not safe for concurrent use; all access is expected to
// happen on the REPL goroutine. A listener that mutates the store from
// inside its own callback triggers a nested notification round before the
// outer one finishes; the resulting ordering is a documented hazard, not
// something the store guards against.
package state

import (
	"context"
	"encoding/json"

	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/logging"
)

// Snapshot is the immutable copy of state handed to subscribers.
type Snapshot struct {
	Session               models.Session
	SelectedVehicleID     *int64
	LastAvailabilityQuery *models.AvailabilityQuery
}

// persistedSession is exactly what goes to durable storage: the session
// fields and nothing else. Selection and query state are transient.
type persistedSession struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type listener struct {
	id int
	fn func(Snapshot)
}

// Store owns the client state. All mutation goes through the four setters;
// reads return copies.
type Store struct {
	storage Storage
	log     logging.Logger

	session      models.Session
	selectedID   *int64
	lastQuery    *models.AvailabilityQuery
	listeners    []listener
	nextListener int
}

// New constructs a Store and restores the persisted session. A missing entry
// leaves the session empty; a malformed entry is deleted and the session
// left empty, with nothing surfaced to the caller.
func New(storage Storage, log logging.Logger) *Store {
	s := &Store{storage: storage, log: log}
	s.restore()
	return s
}

func (s *Store) restore() {
	ctx := context.Background()

	data, err := s.storage.Load()
	if err != nil {
		s.log.Warn(ctx, "session entry unreadable", "err", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var p persistedSession
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Debug(ctx, "discarding corrupted session entry", "err", err)
		if err := s.storage.Delete(); err != nil {
			s.log.Warn(ctx, "could not delete corrupted session entry", "err", err)
		}
		return
	}

	// Token and user travel together; a partial entry counts as no session.
	if p.Token == "" || p.User == nil {
		return
	}
	s.session = models.Session{Token: p.Token, User: p.User}
	s.log.Debug(ctx, "session restored", "email", p.User.Email, "role", p.User.Role)
}

// Session returns a copy of the current session.
func (s *Store) Session() models.Session {
	return copySession(s.session)
}

// SelectedVehicleID returns the last selected vehicle id, if any.
func (s *Store) SelectedVehicleID() (int64, bool) {
	if s.selectedID == nil {
		return 0, false
	}
	return *s.selectedID, true
}

// LastAvailabilityQuery returns the last submitted availability query, if any.
func (s *Store) LastAvailabilityQuery() (models.AvailabilityQuery, bool) {
	if s.lastQuery == nil {
		return models.AvailabilityQuery{}, false
	}
	return *s.lastQuery, true
}

// Snapshot returns an immutable copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Session: copySession(s.session)}
	if s.selectedID != nil {
		id := *s.selectedID
		snap.SelectedVehicleID = &id
	}
	if s.lastQuery != nil {
		q := *s.lastQuery
		snap.LastAvailabilityQuery = &q
	}
	return snap
}

// SetSession stores the token and user together, persists them, and notifies.
func (s *Store) SetSession(token string, user *models.User) {
	s.session = copySession(models.Session{Token: token, User: user})
	s.persist()
	s.notify()
}

// ClearSession drops the session unconditionally. The persisted entry is
// removed; clearing an already-empty session is a no-op on storage.
// Selection and query state survive a logout by design.
func (s *Store) ClearSession() {
	s.session = models.Session{}
	s.persist()
	s.notify()
}

// SetSelectedVehicleID records the vehicle picked from the availability
// results.
func (s *Store) SetSelectedVehicleID(id int64) {
	s.selectedID = &id
	s.persist()
	s.notify()
}

// SetAvailabilityQuery records the last submitted availability query.
func (s *Store) SetAvailabilityQuery(q models.AvailabilityQuery) {
	s.lastQuery = &q
	s.persist()
	s.notify()
}

// Subscribe registers a listener invoked with a snapshot after every
// mutation. The returned func removes the listener.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// persist writes the session fields to durable storage. Only the session is
// ever persisted, but every mutator calls this so storage always reflects
// the latest state.
func (s *Store) persist() {
	ctx := context.Background()

	if !s.session.Active() {
		if err := s.storage.Delete(); err != nil {
			s.log.Warn(ctx, "could not delete session entry", "err", err)
		}
		return
	}

	data, err := json.Marshal(persistedSession{Token: s.session.Token, User: s.session.User})
	if err != nil {
		s.log.Warn(ctx, "could not encode session entry", "err", err)
		return
	}
	if err := s.storage.Save(data); err != nil {
		s.log.Warn(ctx, "could not save session entry", "err", err)
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()
	for _, l := range s.listeners {
		l.fn(snap)
	}
}

func copySession(in models.Session) models.Session {
	out := models.Session{Token: in.Token}
	if in.User != nil {
		u := *in.User
		out.User = &u
	}
	return out
}

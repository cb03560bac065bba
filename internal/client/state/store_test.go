package state

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/logging"
)

// memStorage keeps the entry in memory and counts operations.
type memStorage struct {
	data    []byte
	loadErr error
	saves   int
	deletes int
}

func (m *memStorage) Load() ([]byte, error) {
	return m.data, m.loadErr
}

func (m *memStorage) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memStorage) Delete() error {
	m.data = nil
	m.deletes++
	return nil
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(os.Stderr, slog.LevelError)
}

func userFixture() *models.User {
	return &models.User{Email: "a@b.com", Role: "USER"}
}

func TestNew_EmptyStorage(t *testing.T) {
	s := New(&memStorage{}, testLogger())
	assert.False(t, s.Session().Active())

	_, ok := s.SelectedVehicleID()
	assert.False(t, ok)
	_, ok = s.LastAvailabilityQuery()
	assert.False(t, ok)
}

func TestNew_RestoresPersistedSession(t *testing.T) {
	entry, err := json.Marshal(persistedSession{Token: "t1", User: userFixture()})
	require.NoError(t, err)

	s := New(&memStorage{data: entry}, testLogger())

	sess := s.Session()
	require.True(t, sess.Active())
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, "a@b.com", sess.User.Email)
}

func TestNew_MalformedEntryDeletedSilently(t *testing.T) {
	st := &memStorage{data: []byte("{not json")}
	s := New(st, testLogger())

	assert.False(t, s.Session().Active())
	assert.Equal(t, 1, st.deletes)
	assert.Nil(t, st.data)
}

func TestNew_PartialEntryIsNoSession(t *testing.T) {
	s := New(&memStorage{data: []byte(`{"token":"t1","user":null}`)}, testLogger())
	assert.False(t, s.Session().Active())
}

func TestNew_LoadErrorLeavesEmptySession(t *testing.T) {
	s := New(&memStorage{loadErr: errors.New("disk on fire")}, testLogger())
	assert.False(t, s.Session().Active())
}

func TestSetSession_PersistsBothFields(t *testing.T) {
	st := &memStorage{}
	s := New(st, testLogger())

	s.SetSession("t1", userFixture())

	var p persistedSession
	require.NoError(t, json.Unmarshal(st.data, &p))
	assert.Equal(t, "t1", p.Token)
	require.NotNil(t, p.User)
	assert.Equal(t, "a@b.com", p.User.Email)
}

func TestPersistedEntry_AlwaysReflectsLatestSession(t *testing.T) {
	st := &memStorage{}
	s := New(st, testLogger())

	s.SetSession("t1", userFixture())
	s.SetSession("t2", &models.User{Email: "c@d.com", Role: models.RoleAdmin})

	var p persistedSession
	require.NoError(t, json.Unmarshal(st.data, &p))
	assert.Equal(t, "t2", p.Token)
	assert.Equal(t, "c@d.com", p.User.Email)

	s.ClearSession()
	assert.Nil(t, st.data, "entry must be absent after ClearSession")
}

func TestClearSession_IdempotentWhenEmpty(t *testing.T) {
	st := &memStorage{}
	s := New(st, testLogger())

	s.ClearSession()
	s.ClearSession()

	assert.Nil(t, st.data)
	assert.Equal(t, 0, st.saves)
	assert.False(t, s.Session().Active())
}

func TestClearSession_KeepsTransientState(t *testing.T) {
	s := New(&memStorage{}, testLogger())

	s.SetSession("t1", userFixture())
	s.SetSelectedVehicleID(7)
	s.SetAvailabilityQuery(models.AvailabilityQuery{BranchID: "1"})
	s.ClearSession()

	id, ok := s.SelectedVehicleID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	q, ok := s.LastAvailabilityQuery()
	require.True(t, ok)
	assert.Equal(t, "1", q.BranchID)
}

func TestSubscribe_OneNotificationPerMutatorInOrder(t *testing.T) {
	s := New(&memStorage{}, testLogger())

	var order []string
	s.Subscribe(func(Snapshot) { order = append(order, "first") })
	s.Subscribe(func(Snapshot) { order = append(order, "second") })

	s.SetSession("t1", userFixture())
	s.SetSelectedVehicleID(3)
	s.SetAvailabilityQuery(models.AvailabilityQuery{BranchID: "1"})
	s.ClearSession()

	require.Len(t, order, 8)
	for i := 0; i < len(order); i += 2 {
		assert.Equal(t, "first", order[i])
		assert.Equal(t, "second", order[i+1])
	}
}

func TestSubscribe_SnapshotMatchesPostMutationState(t *testing.T) {
	s := New(&memStorage{}, testLogger())

	var got Snapshot
	s.Subscribe(func(snap Snapshot) { got = snap })

	s.SetSession("t1", userFixture())
	require.True(t, got.Session.Active())
	assert.Equal(t, "t1", got.Session.Token)

	s.SetSelectedVehicleID(42)
	require.NotNil(t, got.SelectedVehicleID)
	assert.Equal(t, int64(42), *got.SelectedVehicleID)
}

func TestSubscribe_SnapshotIsACopy(t *testing.T) {
	s := New(&memStorage{}, testLogger())

	var got Snapshot
	s.Subscribe(func(snap Snapshot) { got = snap })
	s.SetSession("t1", userFixture())

	got.Session.User.Email = "tampered"
	assert.Equal(t, "a@b.com", s.Session().User.Email)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New(&memStorage{}, testLogger())

	calls := 0
	unsubscribe := s.Subscribe(func(Snapshot) { calls++ })

	s.SetSelectedVehicleID(1)
	unsubscribe()
	s.SetSelectedVehicleID(2)

	assert.Equal(t, 1, calls)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	fs := NewFileStorage(path)

	// absent entry
	data, err := fs.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
	require.NoError(t, fs.Delete())

	require.NoError(t, fs.Save([]byte(`{"token":"t"}`)))
	data, err = fs.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"token":"t"}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, fs.Delete())
	data, err = fs.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

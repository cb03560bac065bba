package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/client/state"
	"github.com/smartautorental/rentctl/internal/logging"
)

// memStore is an in-memory state.Storage for tests.
type memStore struct {
	data []byte
}

func (m *memStore) Load() ([]byte, error) { return m.data, nil }
func (m *memStore) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}
func (m *memStore) Delete() error {
	m.data = nil
	return nil
}

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	return state.New(&memStore{}, testLogger())
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestNotifier(buf io.Writer) *Notifier {
	// long visibility so notices never expire mid-test
	return NewNotifier(buf, time.Hour)
}

func loginStore(t *testing.T, s *state.Store, role string) {
	t.Helper()
	s.SetSession("t1", &models.User{Email: "a@b.com", Role: role})
}

func stubInputs(t *testing.T, email, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// fakeAPI implements api.Client, capturing inputs and counting calls.
type fakeAPI struct {
	loginResp    models.AuthResponse
	loginErr     error
	loginCalls   int
	lastEmail    string
	lastPassword string

	searchResp  []models.Vehicle
	searchErr   error
	searchCalls int
	lastQuery   models.AvailabilityQuery

	createResp     models.Booking
	createErr      error
	createCalls    int
	lastBookingReq models.BookingRequest

	myResp  []models.Booking
	myErr   error
	myCalls int

	topResp   []models.TopRentedCar
	topErr    error
	topCalls  int
	lastLimit int

	utilResp     json.RawMessage
	utilErr      error
	utilCalls    int
	lastBranchID string
	lastFrom     string
	lastTo       string
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (models.AuthResponse, error) {
	f.loginCalls++
	f.lastEmail, f.lastPassword = email, password
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) SearchAvailability(_ context.Context, q models.AvailabilityQuery) ([]models.Vehicle, error) {
	f.searchCalls++
	f.lastQuery = q
	return f.searchResp, f.searchErr
}

func (f *fakeAPI) CreateBooking(_ context.Context, req models.BookingRequest) (models.Booking, error) {
	f.createCalls++
	f.lastBookingReq = req
	return f.createResp, f.createErr
}

func (f *fakeAPI) MyBookings(_ context.Context) ([]models.Booking, error) {
	f.myCalls++
	return f.myResp, f.myErr
}

func (f *fakeAPI) TopRented(_ context.Context, limit int) ([]models.TopRentedCar, error) {
	f.topCalls++
	f.lastLimit = limit
	return f.topResp, f.topErr
}

func (f *fakeAPI) Utilization(_ context.Context, branchID, from, to string) (json.RawMessage, error) {
	f.utilCalls++
	f.lastBranchID, f.lastFrom, f.lastTo = branchID, from, to
	return f.utilResp, f.utilErr
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/smartautorental/rentctl/internal/client/api"
	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/client/state"
	"github.com/smartautorental/rentctl/internal/common"
)

// AdminModule owns the admin reports panel. Its visibility is derived from
// the session role on every state change, never stored independently.
type AdminModule struct {
	store  *state.Store
	api    api.Client
	notify *Notifier
	out    io.Writer

	limit    int
	branchID string
	from     string
	to       string

	visible bool
}

// ReportParams are the fixed parameters of the report load action.
type ReportParams struct {
	TopRentedLimit int
	BranchID       string
	From           string
	To             string
}

func NewAdminModule(store *state.Store, client api.Client, notify *Notifier, out io.Writer, params ReportParams) *AdminModule {
	m := &AdminModule{
		store: store, api: client, notify: notify, out: out,
		limit: params.TopRentedLimit, branchID: params.BranchID,
		from: params.From, to: params.To,
	}

	store.Subscribe(func(snap state.Snapshot) {
		m.visible = snap.Session.IsAdmin()
	})
	m.visible = store.Session().IsAdmin()

	return m
}

// Visible reports whether the admin panel is shown for the current session.
func (m *AdminModule) Visible() bool {
	return m.visible
}

// LoadReports fetches the top-rented and utilization reports concurrently
// and renders both. The two calls are not fault-isolated: if either fails,
// the whole action fails, neither report renders, and one error notice is
// shown.
func (m *AdminModule) LoadReports(ctx context.Context) error {
	if !m.store.Session().Active() {
		m.notify.ShowError("Log in first")
		return common.ErrNoSession
	}

	var (
		wg      sync.WaitGroup
		top     []models.TopRentedCar
		topErr  error
		util    json.RawMessage
		utilErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		top, topErr = m.api.TopRented(ctx, m.limit)
	}()
	go func() {
		defer wg.Done()
		util, utilErr = m.api.Utilization(ctx, m.branchID, m.from, m.to)
	}()
	wg.Wait()

	err := topErr
	if err == nil {
		err = utilErr
	}
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}

	fmt.Fprintln(m.out, "Top rented:")
	for _, item := range top {
		fmt.Fprintf(m.out, "  %s - %s %s (%d)\n", item.LicensePlate, item.Brand, item.Model, item.RentalCount)
	}

	pretty, err := json.MarshalIndent(util, "", "  ")
	if err != nil {
		pretty = util
	}
	fmt.Fprintln(m.out, "Utilization:")
	fmt.Fprintln(m.out, string(pretty))

	m.notify.Show("Admin reports loaded")
	return nil
}

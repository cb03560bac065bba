package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/smartautorental/rentctl/internal/client/api"
	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/client/state"
	"github.com/smartautorental/rentctl/internal/common"
	"github.com/smartautorental/rentctl/internal/timex"
)

// AvailabilityModule owns the vehicle search region: it turns the form input
// into a UTC query, remembers it in the store, and keeps the current result
// set for selection.
type AvailabilityModule struct {
	store             *state.Store
	api               api.Client
	notify            *Notifier
	out               io.Writer
	onVehicleSelected func(models.Vehicle)

	results []models.Vehicle
}

func NewAvailabilityModule(store *state.Store, client api.Client, notify *Notifier, out io.Writer, onVehicleSelected func(models.Vehicle)) *AvailabilityModule {
	return &AvailabilityModule{store: store, api: client, notify: notify, out: out, onVehicleSelected: onVehicleSelected}
}

// SearchForm is the raw search input. Times are local wall clock
// ("2006-01-02T15:04"); blank times fall back to the default window of
// two to four days from now.
type SearchForm struct {
	BranchID   string
	Category   string
	StartLocal string
	EndLocal   string
}

// PromptSearchForm collects a SearchForm interactively.
func PromptSearchForm(reader *bufio.Reader, w io.Writer) (SearchForm, error) {
	var form SearchForm
	var err error

	if form.BranchID, err = getSimpleText(reader, "Branch id", w); err != nil {
		return form, err
	}
	if form.Category, err = getSimpleText(reader, "Category (blank for any)", w); err != nil {
		return form, err
	}

	defStart := timex.NowPlusDays(2).Format(timex.InputLayout)
	defEnd := timex.NowPlusDays(4).Format(timex.InputLayout)
	if form.StartLocal, err = GetTextDefault(reader, "Start time (local)", defStart, w); err != nil {
		return form, err
	}
	if form.EndLocal, err = GetTextDefault(reader, "End time (local)", defEnd, w); err != nil {
		return form, err
	}
	return form, nil
}

// Search requires an active session; without one it notifies an error and
// never reaches the API. Prior results are cleared before the call, so a
// failed search leaves the result area empty.
func (m *AvailabilityModule) Search(ctx context.Context, form SearchForm) error {
	if !m.store.Session().Active() {
		m.notify.ShowError("Log in first")
		return common.ErrNoSession
	}

	start, err := timex.ToUTCISO(form.StartLocal)
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}
	end, err := timex.ToUTCISO(form.EndLocal)
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}

	query := models.AvailabilityQuery{
		BranchID:  form.BranchID,
		Category:  form.Category,
		StartTime: start,
		EndTime:   end,
	}
	m.store.SetAvailabilityQuery(query)
	m.results = nil

	cars, err := m.api.SearchAvailability(ctx, query)
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}

	if len(cars) == 0 {
		fmt.Fprintln(m.out, "No vehicles available for the selected filters.")
		return nil
	}

	m.results = cars
	for i, car := range cars {
		fmt.Fprintf(m.out, "%2d. %s %s - plate %s, category %s, estimated %s, dynamic factor %gx\n",
			i+1, car.Brand, car.Model, car.LicensePlate, car.Category,
			timex.FormatMoney(car.EstimatedTotalPrice), car.DynamicFactor)
	}
	m.notify.Show(fmt.Sprintf("Found %d vehicles", len(cars)))
	return nil
}

// Results is the current result set, in display order.
func (m *AvailabilityModule) Results() []models.Vehicle {
	return m.results
}

// Select picks the n-th displayed vehicle (1-based) and fires the injected
// selection callback.
func (m *AvailabilityModule) Select(n int) error {
	if n < 1 || n > len(m.results) {
		err := fmt.Errorf("no result #%d", n)
		m.notify.ShowError(err.Error())
		return err
	}
	if m.onVehicleSelected != nil {
		m.onVehicleSelected(m.results[n-1])
	}
	return nil
}

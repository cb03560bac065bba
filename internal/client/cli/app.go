package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/smartautorental/rentctl/internal/client/api"
	"github.com/smartautorental/rentctl/internal/client/config"
	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/client/state"
	"github.com/smartautorental/rentctl/internal/logging"
)

// App wires the feature modules together over one shared store, API client
// and notifier, and runs the REPL. Composition happens only here: modules
// talk to each other through the store and through the callbacks injected
// below.
type App struct {
	config *config.Config
	log    logging.Logger
	store  *state.Store
	notify *Notifier
	reader *bufio.Reader
	out    io.Writer

	auth         *AuthModule
	availability *AvailabilityModule
	booking      *BookingModule
	admin        *AdminModule
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := state.New(state.NewFileStorage(cfg.SessionFile), log)
	out := io.Writer(os.Stdout)
	notify := NewNotifier(out, cfg.NoticeDuration)
	client := api.NewHTTPClient(cfg.APIBaseURL, store, log)

	a := &App{
		config: cfg,
		log:    log,
		store:  store,
		notify: notify,
		reader: bufio.NewReader(os.Stdin),
		out:    out,
	}

	a.booking = NewBookingModule(store, client, notify, out)
	a.admin = NewAdminModule(store, client, notify, out, ReportParams{
		TopRentedLimit: cfg.TopRentedLimit,
		BranchID:       cfg.ReportBranchID,
		From:           cfg.ReportFrom,
		To:             cfg.ReportTo,
	})
	a.auth = NewAuthModule(store, client, notify, func(models.User) {
		_ = a.booking.RefreshBookings(context.Background())
	})
	a.availability = NewAvailabilityModule(store, client, notify, out, func(car models.Vehicle) {
		store.SetSelectedVehicleID(car.CarID)
		if query, ok := store.LastAvailabilityQuery(); ok {
			a.booking.Prefill(car.CarID, query)
		}
		notify.Show(fmt.Sprintf("Vehicle #%d selected", car.CarID))
	})

	return a
}

// Run performs the initial refresh when a persisted session survived the
// restart, then blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Smart Auto Rental CLI (type 'help' for commands)")
	a.log.Debug(ctx, "client started", "base_url", a.config.APIBaseURL, "session_file", a.config.SessionFile)

	if a.store.Session().Active() {
		_ = a.booking.RefreshBookings(ctx)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	s := a.auth.Status()
	if notice, ok := a.notify.Current(); ok {
		s += " | " + string(notice.Kind) + ": " + notice.Message
	}
	return "(" + s + ")"
}

func (a *App) isLoggedIn() bool {
	return a.store.Session().Active()
}

func (a *App) isAdmin() bool {
	return a.admin.Visible()
}

// Command handlers dispatched by the REPL. Prompting happens here; the
// modules stay prompt-free so tests can drive them with prepared forms.

func (a *App) Login(ctx context.Context) error {
	return a.auth.Login(ctx, a.reader, a.out)
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	return nil
}

func (a *App) Search(ctx context.Context) error {
	form, err := PromptSearchForm(a.reader, a.out)
	if err != nil {
		return err
	}
	return a.availability.Search(ctx, form)
}

func (a *App) Select(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: select <result number>")
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		fmt.Fprintln(a.out, "Usage: select <result number>")
		return nil
	}
	return a.availability.Select(n)
}

func (a *App) Book(ctx context.Context) error {
	form, err := a.booking.PromptForm(a.reader, a.out)
	if err != nil {
		return err
	}
	return a.booking.Submit(ctx, form)
}

func (a *App) Bookings(ctx context.Context) error {
	return a.booking.RefreshBookings(ctx)
}

func (a *App) Reports(ctx context.Context) error {
	return a.admin.LoadReports(ctx)
}

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smartautorental/rentctl/internal/client/api"
	"github.com/smartautorental/rentctl/internal/client/models"
	"github.com/smartautorental/rentctl/internal/client/state"
	"github.com/smartautorental/rentctl/internal/common"
	"github.com/smartautorental/rentctl/internal/timex"
)

// BookingModule owns booking submission and the user's bookings list.
type BookingModule struct {
	store  *state.Store
	api    api.Client
	notify *Notifier
	out    io.Writer

	// prefill filled in by the vehicle-selected callback at bootstrap
	prefill BookingForm

	// last rendered list; cleared instead of fetched when no session exists
	bookings []models.Booking
}

func NewBookingModule(store *state.Store, client api.Client, notify *Notifier, out io.Writer) *BookingModule {
	return &BookingModule{store: store, api: client, notify: notify, out: out}
}

// BookingForm is the raw booking input before conversion to the API payload.
type BookingForm struct {
	CarID      string
	StartLocal string
	EndLocal   string
	Insurance  bool
	Coupon     string
	PayAtDesk  bool
	Waitlist   bool
}

// Prefill seeds the next prompted form from a selected vehicle and the last
// availability query, the way the page populated the booking form.
func (m *BookingModule) Prefill(carID int64, query models.AvailabilityQuery) {
	m.prefill = BookingForm{CarID: strconv.FormatInt(carID, 10)}
	if start, err := timex.ToLocalInput(query.StartTime); err == nil {
		m.prefill.StartLocal = start
	}
	if end, err := timex.ToLocalInput(query.EndTime); err == nil {
		m.prefill.EndLocal = end
	}
}

// PromptForm collects a BookingForm interactively, offering prefilled values
// as defaults.
func (m *BookingModule) PromptForm(reader *bufio.Reader, w io.Writer) (BookingForm, error) {
	var form BookingForm
	var err error

	if form.CarID, err = GetTextDefault(reader, "Vehicle id", m.prefill.CarID, w); err != nil {
		return form, err
	}
	if form.StartLocal, err = GetTextDefault(reader, "Start time (local)", m.prefill.StartLocal, w); err != nil {
		return form, err
	}
	if form.EndLocal, err = GetTextDefault(reader, "End time (local)", m.prefill.EndLocal, w); err != nil {
		return form, err
	}
	if form.Insurance, err = GetYesNo(reader, "Insurance", w); err != nil {
		return form, err
	}
	if form.Coupon, err = getSimpleText(reader, "Coupon code (blank for none)", w); err != nil {
		return form, err
	}
	if form.PayAtDesk, err = GetYesNo(reader, "Pay at desk", w); err != nil {
		return form, err
	}
	if form.Waitlist, err = GetYesNo(reader, "Allow waitlist", w); err != nil {
		return form, err
	}
	return form, nil
}

// Submit requires an active session. On success it prints the raw booking
// response, shows a status notice, and refreshes the bookings list exactly
// once. On failure the error is shown both as a transient notice and as
// persistent output text.
func (m *BookingModule) Submit(ctx context.Context, form BookingForm) error {
	if !m.store.Session().Active() {
		m.notify.ShowError("Log in first")
		return common.ErrNoSession
	}

	payload, err := m.buildPayload(form)
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}

	booking, err := m.api.CreateBooking(ctx, payload)
	if err != nil {
		m.notify.ShowError(err.Error())
		fmt.Fprintln(m.out, err.Error())
		return err
	}

	raw, _ := json.MarshalIndent(booking, "", "  ")
	fmt.Fprintln(m.out, string(raw))
	m.notify.Show(fmt.Sprintf("Booking %s", booking.Status))

	return m.RefreshBookings(ctx)
}

func (m *BookingModule) buildPayload(form BookingForm) (models.BookingRequest, error) {
	carID, err := strconv.ParseInt(form.CarID, 10, 64)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("vehicle id must be numeric: %q", form.CarID)
	}

	start, err := timex.ToUTCISO(form.StartLocal)
	if err != nil {
		return models.BookingRequest{}, err
	}
	end, err := timex.ToUTCISO(form.EndLocal)
	if err != nil {
		return models.BookingRequest{}, err
	}

	payload := models.BookingRequest{
		CarID:             carID,
		StartTime:         start,
		EndTime:           end,
		InsuranceSelected: form.Insurance,
		PayAtDesk:         form.PayAtDesk,
		AllowWaitlist:     form.Waitlist,
	}

	// empty coupon is absent, not ""
	if coupon := strings.TrimSpace(form.Coupon); coupon != "" {
		payload.CouponCode = &coupon
	}
	return payload, nil
}

// RefreshBookings reloads the user's bookings list. Without a session it
// clears the displayed list and returns silently: no API call, no error.
func (m *BookingModule) RefreshBookings(ctx context.Context) error {
	if !m.store.Session().Active() {
		m.bookings = nil
		return nil
	}

	bookings, err := m.api.MyBookings(ctx)
	if err != nil {
		m.notify.ShowError(err.Error())
		return err
	}

	m.bookings = bookings
	m.renderList()
	return nil
}

// Bookings is the last fetched list.
func (m *BookingModule) Bookings() []models.Booking {
	return m.bookings
}

func (m *BookingModule) renderList() {
	if len(m.bookings) == 0 {
		fmt.Fprintln(m.out, "No bookings.")
		return
	}

	fmt.Fprintln(m.out, "id\tcode\tplate\tstatus\tpayment\ttotal")
	for _, b := range m.bookings {
		var total *float64
		if b.Price != nil {
			total = b.Price.Total
		}
		fmt.Fprintf(m.out, "%s\t%s\t%s\t%s\t%s\t%s\n",
			formatID(b.ID), orDash(b.Code), orDash(b.LicensePlate),
			b.Status, b.PaymentStatus, timex.FormatMoney(total))
	}
}

func formatID(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// Package api implements the HTTP/JSON client for the Smart Auto Rental
// backend: one method per remote operation, bearer-token attachment, and a
// uniform error out of non-success responses. There is no retry, timeout,
// or cancellation beyond whatever the caller's context carries.
package api

import (
	"context"
	"encoding/json"

	"github.com/smartautorental/rentctl/internal/client/models"
)

// Client is the remote-operation surface the feature modules depend on.
// Response payloads are returned as decoded by the server, not re-validated.
type Client interface {
	// Login exchanges credentials for a token and user. The only call that
	// never carries a bearer token.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// SearchAvailability lists vehicles rentable under the given filter.
	SearchAvailability(ctx context.Context, q models.AvailabilityQuery) ([]models.Vehicle, error)

	// CreateBooking submits a booking and returns it as created.
	CreateBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error)

	// MyBookings lists the authenticated user's bookings.
	MyBookings(ctx context.Context) ([]models.Booking, error)

	// TopRented fetches the admin top-rented report.
	TopRented(ctx context.Context, limit int) ([]models.TopRentedCar, error)

	// Utilization fetches the admin utilization report. The structure is
	// implementation-defined server-side, so it stays raw and is rendered
	// opaquely.
	Utilization(ctx context.Context, branchID, from, to string) (json.RawMessage, error)
}

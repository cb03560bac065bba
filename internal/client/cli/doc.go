// Package cli provides the interactive Smart Auto Rental command-line client.
//
// It wires the client-state store, the API client, and four feature modules
// (auth, availability, booking, admin) into an interactive REPL. Modules
// compose only through the shared store and through callbacks injected at
// construction: the session-ready hook refreshes the bookings list after
// login, and the vehicle-selected hook pre-fills the booking form from the
// last availability query.
//
// Key flows:
//   - login / logout
//   - search availability, select a result
//   - book a vehicle, list own bookings
//   - load admin reports (visible to the ADMIN role)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the individual modules for details.
package cli

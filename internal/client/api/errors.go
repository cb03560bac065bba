package api

import "strings"

// fallbackMessage is shown when the server gives no usable message.
const fallbackMessage = "Request failed"

// Error is the uniform error produced from any non-success HTTP response.
// Message and Details come from the server's JSON error body when present;
// a plain-text body yields only the generic fallback.
type Error struct {
	Status  int
	Code    string
	Message string
	Details []string
}

// Error renders the server message (or the fallback) with any detail items
// appended, joined by " | ":
//
//	Invalid input: startTime must be future | endTime must be future
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fallbackMessage
	}
	if len(e.Details) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(e.Details, " | ")
}

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// NoticeKind distinguishes informational notices from errors.
type NoticeKind string

const (
	NoticeInfo  NoticeKind = "info"
	NoticeError NoticeKind = "error"
)

// Notice is a single user-facing message with a kind.
type Notice struct {
	Message string
	Kind    NoticeKind
}

// Notifier is a single-slot, timed-visibility message sink. A new notice
// pre-empts the current one and resets the visibility timer. The notice is
// printed immediately and stays readable through Current (the REPL prompt
// shows it) until the timer expires.
type Notifier struct {
	mu         sync.Mutex
	w          io.Writer
	visibility time.Duration
	current    *Notice
	timer      *time.Timer
	seq        int
}

func NewNotifier(w io.Writer, visibility time.Duration) *Notifier {
	return &Notifier{w: w, visibility: visibility}
}

// Show publishes an informational notice.
func (n *Notifier) Show(message string) {
	n.show(Notice{Message: message, Kind: NoticeInfo})
}

// ShowError publishes an error notice.
func (n *Notifier) ShowError(message string) {
	n.show(Notice{Message: message, Kind: NoticeError})
}

func (n *Notifier) show(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = &notice

	fmt.Fprintf(n.w, "[%s] %s\n", notice.Kind, notice.Message)

	n.timer = time.AfterFunc(n.visibility, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// a newer notice reset the slot; leave it alone
		if n.seq == seq {
			n.current = nil
		}
	})
}

// Current returns the visible notice, if any.
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}

package chat

import (
	"time"

	"studio-booking/internal/domain/message"
)

// IsTyping reports whether ts lies within freshness of now.
// Timestamps slightly ahead of now (clock skew between writers) still count.
func IsTyping(ts *time.Time, now time.Time, freshness time.Duration) bool {
	if ts == nil || ts.IsZero() {
		return false
	}
	return now.Sub(*ts) <= freshness
}

// DebounceCutoff is the latest stored typing time that may be overwritten at now.
func DebounceCutoff(now time.Time, debounce time.Duration) time.Time {
	return now.Add(-debounce)
}

type TypingState struct {
	LastAdminTypingAt  *time.Time
	LastClientTypingAt *time.Time
}

// CounterpartTyping evaluates the indicator from the viewer's side.
func (s TypingState) CounterpartTyping(viewer message.Sender, now time.Time, freshness time.Duration) bool {
	if viewer == message.SenderAdmin {
		return IsTyping(s.LastClientTypingAt, now, freshness)
	}
	return IsTyping(s.LastAdminTypingAt, now, freshness)
}

package chat

import (
	"strings"

	"studio-booking/internal/domain/message"
)

type Line struct {
	Sender  message.Sender
	Content string
}

// Pending is a locally appended line that the server has not confirmed yet.
// Position is the length of the server list when the line was sent.
type Pending struct {
	Line
	Position int
}

// Merge is the client-side reconciliation primitive for polled chat history.
// It reconciles an authoritative message list with optimistic local lines.
// A pending line is confirmed by the first unused server line from the same
// sender with the same content at or after its position. Unconfirmed lines are
// appended after the server list and returned as the remaining pending set.
func Merge(server []Line, pending []Pending) ([]Line, []Pending) {
	used := make([]bool, len(server))
	remaining := make([]Pending, 0, len(pending))

	for _, p := range pending {
		start := p.Position
		if start < 0 {
			start = 0
		}
		want := strings.TrimSpace(p.Content)

		matched := false
		for i := start; i < len(server); i++ {
			if used[i] {
				continue
			}
			if server[i].Sender == p.Sender && server[i].Content == want {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			remaining = append(remaining, p)
		}
	}

	merged := make([]Line, 0, len(server)+len(remaining))
	merged = append(merged, server...)
	for _, p := range remaining {
		merged = append(merged, p.Line)
	}
	return merged, remaining
}

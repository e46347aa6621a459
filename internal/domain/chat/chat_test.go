//go:build unit

package chat_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/chat"
	"studio-booking/internal/domain/message"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func line(s message.Sender, c string) chat.Line {
	return chat.Line{Sender: s, Content: c}
}

func TestMerge(t *testing.T) {
	t.Run("サーバーで確認された行は保留から消える", func(t *testing.T) {
		server := []chat.Line{line(message.SenderAdmin, "Hej"), line(message.SenderClient, "Cześć")}
		pending := []chat.Pending{{Line: line(message.SenderClient, " Cześć "), Position: 1}}

		merged, remaining := chat.Merge(server, pending)
		if diff := cmp.Diff(server, merged); diff != "" {
			t.Errorf("merged mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, remaining)
	})

	t.Run("未確認の行は末尾に残る", func(t *testing.T) {
		server := []chat.Line{line(message.SenderAdmin, "Hej")}
		pending := []chat.Pending{{Line: line(message.SenderClient, "Jestem"), Position: 1}}

		merged, remaining := chat.Merge(server, pending)
		assert.Equal(t, []chat.Line{line(message.SenderAdmin, "Hej"), line(message.SenderClient, "Jestem")}, merged)
		assert.Equal(t, pending, remaining)
	})

	t.Run("送信前の同じ内容では確認しない", func(t *testing.T) {
		server := []chat.Line{line(message.SenderClient, "ok")}
		pending := []chat.Pending{{Line: line(message.SenderClient, "ok"), Position: 1}}

		merged, remaining := chat.Merge(server, pending)
		assert.Len(t, merged, 2)
		assert.Len(t, remaining, 1)
	})

	t.Run("同じ内容の連投は一行ずつ対応する", func(t *testing.T) {
		server := []chat.Line{line(message.SenderClient, "ok")}
		pending := []chat.Pending{
			{Line: line(message.SenderClient, "ok"), Position: 0},
			{Line: line(message.SenderClient, "ok"), Position: 0},
		}

		merged, remaining := chat.Merge(server, pending)
		assert.Len(t, merged, 2)
		assert.Len(t, remaining, 1)
	})
}

func TestTyping(t *testing.T) {
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	freshness := 5 * time.Second
	recent := now.Add(-5 * time.Second)
	old := now.Add(-6 * time.Second)

	assert.True(t, chat.IsTyping(&recent, now, freshness))
	assert.False(t, chat.IsTyping(&old, now, freshness))
	assert.False(t, chat.IsTyping(nil, now, freshness))
	assert.Equal(t, now.Add(-2*time.Second), chat.DebounceCutoff(now, 2*time.Second))

	state := chat.TypingState{LastClientTypingAt: &recent}
	assert.True(t, state.CounterpartTyping(message.SenderAdmin, now, freshness))
	assert.False(t, state.CounterpartTyping(message.SenderClient, now, freshness))
}

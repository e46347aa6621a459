package response

import (
	"time"

	"studio-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendMessageResponse struct {
	Success bool             `json:"success"`
	Message *MessageResponse `json:"message"`
}

func FromSentMessage(m *commands.SentMessage) SendMessageResponse {
	return SendMessageResponse{
		Success: true,
		Message: &MessageResponse{
			ID:        m.ID,
			Sender:    m.Sender.String(),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		},
	}
}

type TypingResponse struct {
	Success  bool `json:"success"`
	Recorded bool `json:"recorded"`
}

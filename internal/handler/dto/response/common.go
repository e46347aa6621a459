package response

import "github.com/google/uuid"

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func OK(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

type CreatedResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

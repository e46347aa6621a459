package api

import (
	"net/http"

	"studio-booking/internal/domain/message"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler serves both sides of a reservation conversation.
// Client routes sit behind RequireReservationAccess, admin routes behind RequireAdmin.
type ChatHandler struct {
	cmds commands.ChatCommands
	q    queries.ChatQueries
}

func NewChatHandler(cmds commands.ChatCommands, q queries.ChatQueries) *ChatHandler {
	return &ChatHandler{cmds: cmds, q: q}
}

// @Summary Fetch chat (client)
// @Tags chat
// @Produce json
// @Param code path string true "Reservation code"
// @Param X-Reservation-Password header string true "Reservation password"
// @Success 200 {object} queries.ChatView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code}/messages [get]
func (h *ChatHandler) ClientFetch(c *gin.Context) {
	if id, ok := accessedReservation(c); ok {
		h.fetch(c, id, message.SenderClient)
	}
}

// @Summary Send message (client)
// @Tags chat
// @Accept json
// @Produce json
// @Param code path string true "Reservation code"
// @Param X-Reservation-Password header string true "Reservation password"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.SendMessageResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations/{code}/messages [post]
func (h *ChatHandler) ClientSend(c *gin.Context) {
	if id, ok := accessedReservation(c); ok {
		h.send(c, id, message.SenderClient)
	}
}

// @Summary Typing signal (client)
// @Tags chat
// @Produce json
// @Param code path string true "Reservation code"
// @Param X-Reservation-Password header string true "Reservation password"
// @Success 200 {object} resdto.TypingResponse
// @Router /reservations/{code}/typing [post]
func (h *ChatHandler) ClientTyping(c *gin.Context) {
	if id, ok := accessedReservation(c); ok {
		h.typing(c, id, message.SenderClient)
	}
}

// @Summary Fetch chat (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ChatView
// @Router /admin/reservations/{id}/messages [get]
func (h *ChatHandler) AdminFetch(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.fetch(c, id, message.SenderAdmin)
	}
}

// @Summary Send message (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.SendMessageResponse
// @Router /admin/reservations/{id}/messages [post]
func (h *ChatHandler) AdminSend(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.send(c, id, message.SenderAdmin)
	}
}

// @Summary Typing signal (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.TypingResponse
// @Router /admin/reservations/{id}/typing [post]
func (h *ChatHandler) AdminTyping(c *gin.Context) {
	if id, ok := pathID(c); ok {
		h.typing(c, id, message.SenderAdmin)
	}
}

func (h *ChatHandler) fetch(c *gin.Context, reservationID uuid.UUID, viewer message.Sender) {
	view, err := h.q.Fetch(c.Request.Context(), reservationID, viewer)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ChatHandler) send(c *gin.Context, reservationID uuid.UUID, sender message.Sender) {
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	sent, err := h.cmds.Send(c.Request.Context(), reservationID, sender, req.Content)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSentMessage(sent))
}

func (h *ChatHandler) typing(c *gin.Context, reservationID uuid.UUID, sender message.Sender) {
	recorded, err := h.cmds.Typing(c.Request.Context(), reservationID, sender)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TypingResponse{Success: true, Recorded: recorded})
}

func accessedReservation(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetReservationID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthorized, "Internal server error", nil)
	}
	return id, ok
}

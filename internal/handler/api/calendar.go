package api

import (
	"net/http"

	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const calendarContentType = "text/calendar; charset=utf-8"

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary Subscription feed
// @Description iCalendar feed of pending and confirmed reservations from the last month onward
// @Tags calendar
// @Produce text/calendar
// @Param token query string true "Feed token"
// @Success 200 {string} string
// @Failure 401 {string} string
// @Router /admin/calendar [get]
func (h *CalendarHandler) Feed(c *gin.Context) {
	body, err := h.q.Feed(c.Request.Context(), c.Query("token"))
	if err != nil {
		_ = c.Error(err)
		if errs.Is(err, errs.ErrCalendarTokenInvalid) {
			c.String(http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservations.ics"`)
	c.Data(http.StatusOK, calendarContentType, []byte(body))
}

// @Summary Calendar links for one reservation
// @Tags calendar
// @Produce json
// @Param code path string true "Reservation code"
// @Param X-Reservation-Password header string true "Reservation password"
// @Success 200 {object} queries.CalendarLinks
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code}/calendar [get]
func (h *CalendarHandler) Links(c *gin.Context) {
	links, ok := h.links(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, links)
}

// @Summary Download .ics for one reservation
// @Tags calendar
// @Produce text/calendar
// @Param code path string true "Reservation code"
// @Param X-Reservation-Password header string true "Reservation password"
// @Success 200 {string} string
// @Router /reservations/{code}/calendar.ics [get]
func (h *CalendarHandler) Download(c *gin.Context) {
	links, ok := h.links(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+links.FileName+`"`)
	c.Data(http.StatusOK, calendarContentType, []byte(links.ICS))
}

func (h *CalendarHandler) links(c *gin.Context) (*queries.CalendarLinks, bool) {
	id, ok := middleware.GetReservationID(c)
	if !ok {
		abortWithUsecaseError(c, errUnauthorized)
		return nil, false
	}

	links, err := h.q.EventLinks(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return nil, false
	}
	return links, true
}

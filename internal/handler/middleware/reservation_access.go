package middleware

import (
	"net/http"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PasswordHeader carries the reservation password on every client request.
const PasswordHeader = "X-Reservation-Password"

const ctxReservationIDKey = "reservation_id"

// RequireReservationAccess resolves :code to a reservation id when the password header matches.
// Unknown codes and wrong passwords are reported separately; neither leaks reservation data.
func RequireReservationAccess(q queries.ReservationQueries) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := q.Authorize(c.Request.Context(), c.Param("code"), c.GetHeader(PasswordHeader))
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrReservationNotFound):
				httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			case errs.Is(err, errs.ErrAccessDenied):
				httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid password", nil)
			default:
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
			return
		}

		c.Set(ctxReservationIDKey, id)
		c.Next()
	}
}

func GetReservationID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxReservationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

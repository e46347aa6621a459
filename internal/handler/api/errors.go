package api

import (
	"net/http"

	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = errs.New("unauthorized")

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorTable is checked in order; the first marked sentinel wins.
var errorTable = []errorMapping{
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrAccessDenied, http.StatusForbidden, "Invalid password"},
	{errs.ErrOfferNotFound, http.StatusNotFound, "Offer not found"},
	{errs.ErrOfferInUse, http.StatusConflict, "Offer has reservations"},
	{errs.ErrDiscountCodeNotFound, http.StatusBadRequest, "Discount code not found"},
	{errs.ErrDuplicateDiscount, http.StatusConflict, "Discount code already exists"},
	{errs.ErrEmptyMessage, http.StatusBadRequest, "Message content is empty"},
	{errs.ErrInvalidSender, http.StatusBadRequest, "Invalid sender"},
	{errs.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
	{errs.ErrNothingToUpdate, http.StatusBadRequest, "Nothing to update"},
	{errs.ErrPasswordMismatch, http.StatusBadRequest, "Passwords do not match"},
	{errs.ErrEmailTaken, http.StatusConflict, "Email already taken"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{errs.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

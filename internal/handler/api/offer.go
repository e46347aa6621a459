package api

import (
	"net/http"

	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewOfferHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary List offers
// @Tags offers
// @Produce json
// @Success 200 {array} queries.OfferView
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.q.ListOffers(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} queries.OfferView
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	offer, err := h.q.GetOffer(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// @Summary Create offer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Router /admin/offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateOffer(c.Request.Context(), toOfferInput(req))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Success: true, ID: id})
}

// @Summary Update offer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.OfferRequest true "Offer"
// @Success 200 {object} resdto.SuccessResponse
// @Router /admin/offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateOffer(c.Request.Context(), id, toOfferInput(req)); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(""))
}

// @Summary Delete offer
// @Description Offers that still have reservations cannot be deleted
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 409 {object} httperr.Response
// @Router /admin/offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteOffer(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(""))
}

// @Summary Verify discount code
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyDiscountRequest true "Code"
// @Success 200 {object} queries.DiscountVerification
// @Router /discount-codes/verify [post]
func (h *OfferHandler) VerifyDiscount(c *gin.Context) {
	var req reqdto.VerifyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.q.VerifyDiscountCode(c.Request.Context(), req.Code)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List discount codes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.DiscountCodeView
// @Router /admin/discount-codes [get]
func (h *OfferHandler) ListDiscounts(c *gin.Context) {
	codes, err := h.q.ListDiscountCodes(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, codes)
}

// @Summary Create discount code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DiscountCodeRequest true "Discount code"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} httperr.Response
// @Router /admin/discount-codes [post]
func (h *OfferHandler) CreateDiscount(c *gin.Context) {
	var req reqdto.DiscountCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateDiscountCode(c.Request.Context(), toDiscountCodeInput(req))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Success: true, ID: id})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"studio-booking/internal/handler/api"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewOfferHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/offers", h.List)
	s.router.GET("/offers/:id", h.Get)
	s.router.POST("/admin/offers", h.Create)
	s.router.PUT("/admin/offers/:id", h.Update)
	s.router.DELETE("/admin/offers/:id", h.Delete)
	s.router.POST("/discount-codes/verify", h.VerifyDiscount)
	s.router.GET("/admin/discount-codes", h.ListDiscounts)
	s.router.POST("/admin/discount-codes", h.CreateDiscount)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestOffers() {
	id := uuid.New()

	s.Run("一覧を返す", func() {
		s.mockQueries.EXPECT().ListOffers(gomock.Any()).Return([]*queries.OfferView{
			{ID: id, Title: "Sesja rodzinna", Features: []string{"20 zdjęć"}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil, "")

		var response []queries.OfferView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal([]string{"20 zdjęć"}, response[0].Features)
	})

	s.Run("存在しないオファーは404", func() {
		s.mockQueries.EXPECT().GetOffer(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrOfferNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})

	s.Run("作成は201とIDを返す", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), commands.OfferInput{
			Title:     "Sesja ciążowa",
			Duration:  "60",
			Questions: []string{"Który tydzień?"},
		}).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/offers", map[string]any{
			"title":     "Sesja ciążowa",
			"duration":  "60",
			"questions": []string{"Który tydzień?"},
		}, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("タイトル欠落は400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/offers", map[string]any{"price": "300"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("更新", func() {
		s.mockCommands.EXPECT().UpdateOffer(gomock.Any(), id, gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/offers/"+id.String(),
			map[string]any{"title": "Sesja rodzinna XL"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("予約で使用中のオファーは削除できない", func() {
		s.mockCommands.EXPECT().DeleteOffer(gomock.Any(), id).
			Return(errs.Mark(errs.New("fk"), errs.ErrOfferInUse)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/offers/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Offer has reservations")
	})
}

func (s *OfferHandlerTestSuite) TestDiscountCodes() {
	id := uuid.New()

	s.Run("有効なコードの検証", func() {
		s.mockQueries.EXPECT().VerifyDiscountCode(gomock.Any(), "LATO10").Return(&queries.DiscountVerification{
			Valid: true, Type: "percentage", Value: 10, ID: &id,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/discount-codes/verify",
			map[string]string{"code": "LATO10"}, "")

		var response queries.DiscountVerification
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal(10.0, response.Value)
	})

	s.Run("コード欠落は400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/discount-codes/verify",
			map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("作成時のisActive省略は有効扱い", func() {
		s.mockCommands.EXPECT().CreateDiscountCode(gomock.Any(), commands.DiscountCodeInput{
			Code: "ZIMA20", Type: "fixed", Value: 20, IsActive: true,
		}).Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/discount-codes",
			map[string]any{"code": "ZIMA20", "type": "fixed", "value": 20}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("不正な種別は400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/discount-codes",
			map[string]any{"code": "ZIMA20", "type": "bogus", "value": 20}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("重複コードは409", func() {
		s.mockCommands.EXPECT().CreateDiscountCode(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("dup"), errs.ErrDuplicateDiscount)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/discount-codes",
			map[string]any{"code": "LATO10", "type": "percentage", "value": 10, "isActive": false}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Discount code already exists")
	})

	s.Run("管理用一覧", func() {
		s.mockQueries.EXPECT().ListDiscountCodes(gomock.Any()).Return([]*queries.DiscountCodeView{
			{ID: id, Code: "LATO10", Type: "percentage", Value: 10, IsActive: true},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/discount-codes", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

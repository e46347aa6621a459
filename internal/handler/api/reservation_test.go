//go:build unit

package api_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/common/testutil"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", h.Create)
	s.router.POST("/reservations/:code/access", h.Access)
	s.router.GET("/reservations/:code", h.Get)
	s.router.GET("/admin/reservations", h.List)
	s.router.GET("/admin/reservations/:id", h.GetByID)
	s.router.PATCH("/admin/reservations/:id/status", h.UpdateStatus)
	s.router.PATCH("/admin/reservations/:id", h.UpdateDetails)
	s.router.DELETE("/admin/reservations/:id", h.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func validCreateBody(offerID uuid.UUID) map[string]any {
	return map[string]any{
		"offerId":     offerID.String(),
		"date":        "2030-06-15T14:30",
		"clientName":  "Anna Nowak",
		"clientEmail": "anna@example.test",
		"clientPhone": "+48 600 000 000",
		"answers":     map[string]any{"Ile osób?": "3"},
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	offerID := uuid.New()

	s.Run("正常系: 201とコードを返す", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
			in, ok := x.(commands.CreateReservationInput)
			if !ok {
				return false
			}
			// offset-less dates are Warsaw local time
			return in.OfferID == offerID &&
				in.Date.Equal(time.Date(2030, 6, 15, 12, 30, 0, 0, time.UTC)) &&
				in.ClientName == "Anna Nowak" &&
				len(in.Answers) == 1 && in.Answers[0].Answer == "3"
		})).Return(&commands.CreateReservationResult{ID: uuid.New(), Code: "abc123def4"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", validCreateBody(offerID), "")

		var response struct {
			Success bool   `json:"success"`
			Code    string `json:"code"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Equal("abc123def4", response.Code)
	})

	s.Run("異常系: 必須項目の欠落は400", func() {
		for _, field := range []string{"offerId", "date", "clientName", "clientEmail", "clientPhone"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), validCreateBody(offerID), testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("異常系: 解釈できない日付は400", func() {
		body := testutil.DtoMap(s.T(), validCreateBody(offerID), testutil.Field("date", "15.06.2030"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("異常系: 存在しないオファーは404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrOfferNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations", validCreateBody(offerID), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}

func (s *ReservationHandlerTestSuite) TestAccess() {
	view := &queries.ReservationDetailView{
		ID:      uuid.New(),
		Code:    "abc123def4",
		Status:  reservation.StatusPending.String(),
		Answers: reservation.Answers{{Question: "Ile osób?", Answer: "3"}},
	}

	s.Run("正常系: パスワードで予約詳細を返す", func() {
		s.mockQueries.EXPECT().Unlock(gomock.Any(), "abc123def4", "x1y2z3").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc123def4/access",
			map[string]string{"password": "x1y2z3"}, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("abc123def4", response["code"])
		s.NotContains(response, "password")
	})

	s.Run("異常系: パスワード欠落は400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc123def4/access",
			map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("異常系: 誤ったパスワードは403", func() {
		s.mockQueries.EXPECT().Unlock(gomock.Any(), "abc123def4", "wrong1").
			Return(nil, errs.Mark(errs.New("denied"), errs.ErrAccessDenied)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc123def4/access",
			map[string]string{"password": "wrong1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid password")
	})

	s.Run("異常系: 不明なコードは404", func() {
		s.mockQueries.EXPECT().Unlock(gomock.Any(), "nope", "x1y2z3").
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/nope/access",
			map[string]string{"password": "x1y2z3"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("正常系: ヘッダーのパスワードを使う", func() {
		s.mockQueries.EXPECT().Unlock(gomock.Any(), "abc123def4", "x1y2z3").
			Return(&queries.ReservationDetailView{Code: "abc123def4"}, nil).Times(1)

		req := nethttptest.NewRequest(http.MethodGet, "/reservations/abc123def4", nil)
		req.Header.Set(middleware.PasswordHeader, "x1y2z3")
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ReservationHandlerTestSuite) TestAdmin() {
	id := uuid.New()
	base := "/admin/reservations/" + id.String()

	s.Run("一覧を返す", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ReservationListItem{
			{ID: id, Code: "abc123def4", OfferTitle: "Sesja rodzinna"},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations", nil, "")

		var response []queries.ReservationListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Sesja rodzinna", response[0].OfferTitle)
	})

	s.Run("IDで詳細を返す", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(&queries.ReservationDetailView{ID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("不正なIDは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("ステータス更新", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "confirmed").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/status",
			map[string]string{"status": "confirmed"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("不正なステータスは400", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "archived").
			Return(errs.Mark(errs.New("bad"), errs.ErrInvalidStatus)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/status",
			map[string]string{"status": "archived"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("部分更新は指定した項目だけ渡す", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), id, gomock.Cond(func(x any) bool {
			in, ok := x.(commands.UpdateDetailsInput)
			return ok && in.ClientName != nil && *in.ClientName == "Jan" &&
				in.Date == nil && in.ClientEmail == nil && in.NotifyClient
		})).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base,
			map[string]any{"clientName": "Jan", "notifyClient": true}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("変更なしは400", func() {
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), id, gomock.Any()).
			Return(errs.Mark(errs.New("noop"), errs.ErrNothingToUpdate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, base, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Nothing to update")
	})

	s.Run("削除", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("存在しない予約の削除は404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.Mark(errs.New("missing"), errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

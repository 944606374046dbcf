//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/handler/api"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"
	"dryclean-api/tests/common/builder"
	"dryclean-api/tests/common/httptest"
	"dryclean-api/tests/common/testutil"
	commandsmock "dryclean-api/tests/mock/commands"
	queriesmock "dryclean-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testCustomerID int64 = 7

// fakeAuth stands in for RequireAuth: any bearer token is accepted as testCustomerID.
func fakeAuth(role customer.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Oturum açmanız gerekiyor"}})
			return
		}
		c.Set("customer_id", testCustomerID)
		c.Set("customer_role", role)
		c.Next()
	}
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	authed := fakeAuth(customer.RoleCustomer)
	s.router.POST("/orders", authed, s.handler.Create)
	s.router.GET("/orders", authed, s.handler.ListMine)
	s.router.POST("/orders/quote", s.handler.Quote)
	s.router.POST("/orders/track", s.handler.Track)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with code and total", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), testCustomerID, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, req commands.CreateOrderRequest) (*commands.CreateOrderResult, error) {
				s.Equal("İstanbul - Kadıköy", req.Branch)
				s.Len(req.Lines, 1)
				s.Equal(catalog.ProductShirt, req.Lines[0].Product)
				s.Equal("2", req.Lines[0].Quantity)
				return &commands.CreateOrderResult{ID: 42, Code: "SP-42", Total: catalog.TL(160)}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(42), body.ID)
		s.Equal("SP-42", body.Code)
		s.InDelta(160.0, body.Total, 0.001)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Oturum")
	})

	s.Run("error: 400 Bad Request when an item has no product", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("items", []map[string]any{{"quantity": "1"}}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing branch or address",
				commandsError:  commands.ErrMissingBranchOrAddress,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Şube ve adres",
			},
			{
				name:           "empty cart is marked as validation",
				commandsError:  errs.Mark(order.ErrEmptyCart, errs.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "En az bir ürün",
			},
			{
				name:           "unknown branch id",
				commandsError:  commands.ErrBranchNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Şube bulunamadı",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Sunucu hatası",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOrder(gomock.Any(), testCustomerID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *OrderHandlerTestSuite) TestQuote() {
	url := "/orders/quote"
	b := builder.NewOrderBuilder().WithBags(1)
	quote, err := b.BuildQuote()
	s.Require().NoError(err)

	s.Run("success: returns priced lines", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Len(1), "1").
			Return(&quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"items": b.BuildCreateRequestDTO().Items, "bagCount": "1"}, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Lines, 1)
		s.Equal(string(catalog.ProductShirt), body.Lines[0].Product)
		s.Equal(2, body.Lines[0].Quantity)
		s.Equal(1, body.BagCount)
		s.InDelta(quote.Total.Lira(), body.Total, 0.001)
	})

	s.Run("error: 400 when nothing is chargeable", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(order.ErrEmptyCart, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"items": []any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "En az bir ürün")
	})

	s.Run("error: 400 when a limit is exceeded", func() {
		testCases := []struct {
			err         error
			expectedMsg string
		}{
			{order.ErrQuantityTooLarge, "999 adet"},
			{order.ErrBagCountTooLarge, "99 çamaşır filesi"},
			{order.ErrTotalTooLarge, "üst sınırı"},
		}
		for _, tc := range testCases {
			s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, errs.Mark(tc.err, errs.ErrDomainValidation)).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"items": []any{}}, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *OrderHandlerTestSuite) TestListMine() {
	url := "/orders"

	s.Run("success: returns the customer's orders", func() {
		view := builder.NewOrderBuilder().BuildCustomerView(3)
		s.mockQueries.EXPECT().ListForCustomer(gomock.Any(), testCustomerID).
			Return([]*queries.CustomerOrderView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.CustomerOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("SP-3", body[0].Code)
		s.Equal(view.StatusMessage, body[0].StatusMessage)
		s.Equal(view.DescriptionLines, body[0].DescriptionLines)
		s.InDelta(160.0, body[0].Total, 0.001)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListForCustomer(gomock.Any(), testCustomerID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListForCustomer(gomock.Any(), testCustomerID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Sunucu hatası")
	})
}

// ================================================================================
// TestTrack
// ================================================================================

func (s *OrderHandlerTestSuite) TestTrack() {
	url := "/orders/track"

	s.Run("success: returns the tracked order", func() {
		s.mockQueries.EXPECT().Track(gomock.Any(), "sp-5", "").
			Return(&queries.TrackedOrderView{
				ID:            5,
				Code:          "SP-5",
				Status:        order.StatusPreparing.String(),
				StatusMessage: order.StatusPreparing.Message(),
				Total:         catalog.NewMoney(8550),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"code": "sp-5"}, "")

		var body resdto.TrackedOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SP-5", body.Code)
		s.Equal(order.StatusPreparing.Message(), body.StatusMessage)
		s.InDelta(85.5, body.Total, 0.001)
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{"no criteria", queries.ErrTrackingCriteriaRequired, http.StatusBadRequest, "Sipariş numarası veya telefon"},
			{"bad code", errs.Mark(order.ErrInvalidOrderCode, queries.ErrInvalidOrderCode), http.StatusBadRequest, "SP-123"},
			{"no match", queries.ErrOrderNotFound, http.StatusNotFound, "Sipariş bulunamadı"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"code": "x"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

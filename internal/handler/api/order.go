package api

import (
	"net/http"

	"dryclean-api/internal/domain/order"
	reqdto "dryclean-api/internal/handler/dto/request"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var cartErrors = []errorMapping{
	{commands.ErrMissingBranchOrAddress, http.StatusBadRequest, "Şube ve adres bilgisi zorunludur"},
	{order.ErrEmptyCart, http.StatusBadRequest, "En az bir ürün veya çamaşır filesi seçmelisiniz"},
	{order.ErrQuantityTooLarge, http.StatusBadRequest, "Bir üründen en fazla 999 adet seçilebilir"},
	{order.ErrBagCountTooLarge, http.StatusBadRequest, "En fazla 99 çamaşır filesi seçilebilir"},
	{order.ErrTotalTooLarge, http.StatusBadRequest, "Sipariş tutarı izin verilen üst sınırı aşıyor"},
	{commands.ErrBranchNotFound, http.StatusNotFound, "Şube bulunamadı"},
}

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place an order
// @Description Prices the cart against the current catalog and stores the order as ALINDI
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Checkout form"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.CreateOrder(c.Request.Context(), customerID, req.ToCommand())
	if err != nil {
		abortMapped(c, err, cartErrors...)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateOrderResult(result))
}

// @Summary Price a cart
// @Description Returns the priced lines and total without storing anything
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Cart"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /api/orders/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	q, err := h.cmds.Quote(c.Request.Context(), req.LineRequests(), req.BagCount)
	if err != nil {
		abortMapped(c, err, cartErrors...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(q))
}

// @Summary My orders
// @Description Newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerOrderResponse
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	views, err := h.q.ListForCustomer(c.Request.Context(), customerID)
	if err != nil {
		abortMapped(c, err)
		return
	}

	res, err := resdto.FromCustomerOrders(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Track an order
// @Description Finds the newest order matching the SP- code and/or phone number
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.TrackOrderRequest true "Order code and/or phone"
// @Success 200 {object} resdto.TrackedOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/track [post]
func (h *OrderHandler) Track(c *gin.Context) {
	var req reqdto.TrackOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	view, err := h.q.Track(c.Request.Context(), req.Code, req.Phone)
	if err != nil {
		abortMapped(c, err,
			errorMapping{queries.ErrTrackingCriteriaRequired, http.StatusBadRequest, "Sipariş numarası veya telefon numarası giriniz"},
			errorMapping{queries.ErrInvalidOrderCode, http.StatusBadRequest, "Sipariş numarası SP-123 biçiminde olmalıdır"},
			errorMapping{queries.ErrOrderNotFound, http.StatusNotFound, "Sipariş bulunamadı"},
		)
		return
	}

	res, err := resdto.FromTrackedOrder(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

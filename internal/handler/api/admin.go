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

type AdminHandler struct {
	orders    queries.OrderQueries
	orderCmds commands.OrderCommands
	customers queries.CustomerQueries
	contacts  queries.ContactQueries
}

func NewAdminHandler(
	orders queries.OrderQueries,
	orderCmds commands.OrderCommands,
	customers queries.CustomerQueries,
	contacts queries.ContactQueries,
) *AdminHandler {
	return &AdminHandler{
		orders:    orders,
		orderCmds: orderCmds,
		customers: customers,
		contacts:  contacts,
	}
}

// @Summary Dashboard
// @Description Totals and the five newest orders. Zeroed when the database is unavailable.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	res, err := resdto.FromDashboard(h.orders.Dashboard(c.Request.Context()))
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary All orders
// @Description Paged, newest first. Invalid pages fall back to 1.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} resdto.AdminOrderPageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	page, err := h.orders.ListPage(c.Request.Context(), c.Query("page"))
	if err != nil {
		abortMapped(c, err)
		return
	}

	res, err := resdto.FromAdminOrderPage(page)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Change order status
// @Description Any listed status may follow any other; setting the current status changes nothing
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.UpdateStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Geçersiz sipariş durumu", nil)
		return
	}

	result, err := h.orderCmds.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		abortMapped(c, err,
			errorMapping{order.ErrInvalidStatus, http.StatusBadRequest, "Geçersiz sipariş durumu"},
			errorMapping{commands.ErrOrderNotFound, http.StatusNotFound, "Sipariş bulunamadı"},
		)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUpdateStatusResult(result))
}

// @Summary Customers
// @Description Newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/customers [get]
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	views, err := h.customers.List(c.Request.Context())
	if err != nil {
		abortMapped(c, err)
		return
	}

	res, err := resdto.FromCustomerViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Contact messages
// @Description Newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ContactMessageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/messages [get]
func (h *AdminHandler) ListMessages(c *gin.Context) {
	views, err := h.contacts.List(c.Request.Context())
	if err != nil {
		abortMapped(c, err)
		return
	}

	res, err := resdto.FromContactMessages(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

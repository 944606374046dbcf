//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/handler/dto/request"
	"dryclean-api/internal/handler/dto/response"
	"dryclean-api/tests/common/authtest"
	"dryclean-api/tests/common/dbtest"
	"dryclean-api/tests/common/httptest"
	"dryclean-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	dashboardURL = "/api/admin/dashboard"
	ordersURL    = "/api/admin/orders"
	pricesURL    = "/api/admin/prices"
	branchesURL  = "/api/admin/branches"
	customersURL = "/api/admin/customers"
	messagesURL  = "/api/admin/messages"
)

type adminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) adminToken() string {
	return authtest.CreateAndLoginAdmin(s.T(), s.DB, s.Router, s.Config.Admin.Email)
}

func (s *adminSuite) seedOrders(n int) (customerID int64, ids []int64) {
	t := s.T()
	customerID = dbtest.CreateTestCustomer(t, s.DB, "ayse@example.com", "05551112233", string(customer.RoleCustomer))
	branchID := dbtest.DefaultBranchID(t, s.DB)
	for i := 0; i < n; i++ {
		ids = append(ids, dbtest.CreateTestOrder(t, s.DB, customerID, branchID, order.StatusReceived.String(), "100.50"))
	}
	return customerID, ids
}

func (s *adminSuite) TestAccess() {
	s.Run("customers are forbidden from admin endpoints", func() {
		t := s.T()
		_, token := authtest.CreateAndLoginCustomer(t, s.DB, s.Router, "ayse@example.com", "05551112233")

		for _, ep := range []struct{ method, path string }{
			{http.MethodGet, dashboardURL},
			{http.MethodGet, ordersURL},
			{http.MethodPatch, ordersURL + "/1/status"},
			{http.MethodPut, pricesURL},
			{http.MethodGet, branchesURL},
			{http.MethodGet, customersURL},
			{http.MethodGet, messagesURL},
		} {
			w := httptest.PerformRequest(t, s.Router, ep.method, ep.path, nil, token)
			require.Equal(t, http.StatusForbidden, w.Code, ep.path)
		}
	})
}

func (s *adminSuite) TestDashboard() {
	s.Run("empty database", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, token)
		var res response.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, int64(0), res.TotalOrders)
		require.Zero(t, res.Revenue)
		require.Empty(t, res.RecentOrders)
	})

	s.Run("totals and the five newest orders", func() {
		t := s.T()
		token := s.adminToken()
		_, ids := s.seedOrders(7)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, token)
		var res response.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		// admins are not counted
		require.Equal(t, int64(1), res.TotalCustomers)
		require.Equal(t, int64(7), res.TotalOrders)
		require.InDelta(t, 703.5, res.Revenue, 0.001)
		require.Len(t, res.RecentOrders, 5)
		require.Equal(t, ids[6], res.RecentOrders[0].ID)
		require.Equal(t, "Test Müşteri", res.RecentOrders[0].CustomerName)
	})
}

func (s *adminSuite) TestListOrders() {
	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantOnPage  int
		wantFirstAt int
	}{
		{"first page", "", 1, 5, 6},
		{"second page", "?page=2", 2, 2, 1},
		{"garbage page falls back to 1", "?page=abc", 1, 5, 6},
		{"negative page falls back to 1", "?page=-3", 1, 5, 6},
		{"past the end is empty", "?page=9", 9, 0, -1},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := s.adminToken()
			_, ids := s.seedOrders(7)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+tt.query, nil, token)
			var res response.AdminOrderPageResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

			require.Equal(t, tt.wantPage, res.Page)
			require.Equal(t, s.Config.Orders.PerPage, res.PerPage)
			require.Equal(t, int64(7), res.TotalCount)
			require.Equal(t, 2, res.TotalPages)
			require.Len(t, res.Orders, tt.wantOnPage)
			require.Len(t, res.StatusOptions, len(order.StatusOptions()))
			if tt.wantFirstAt >= 0 {
				require.Equal(t, ids[tt.wantFirstAt], res.Orders[0].ID)
				require.Equal(t, fmt.Sprintf("SP-%d", ids[tt.wantFirstAt]), res.Orders[0].Code)
			}
		})
	}
}

func (s *adminSuite) TestUpdateStatus() {
	s.Run("changes the status and the customer sees the new message", func() {
		t := s.T()
		token := s.adminToken()
		_, ids := s.seedOrders(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%d/status", ordersURL, ids[0]),
			request.UpdateStatusRequest{Status: " hazirlaniyor "}, token)
		var res response.UpdateStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.Changed)
		require.Equal(t, order.StatusPreparing.String(), res.Status)

		track := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders/track",
			request.TrackOrderRequest{Code: order.FormatCode(ids[0])}, "")
		var tracked response.TrackedOrderResponse
		httptest.AssertSuccessResponse(t, track, http.StatusOK, &tracked)
		require.Equal(t, order.StatusPreparing.Message(), tracked.StatusMessage)
	})

	s.Run("same status is a no-op", func() {
		t := s.T()
		token := s.adminToken()
		_, ids := s.seedOrders(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("%s/%d/status", ordersURL, ids[0]),
			request.UpdateStatusRequest{Status: order.StatusReceived.String()}, token)
		var res response.UpdateStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.Changed)
	})

	tests := []struct {
		name           string
		id             string
		status         string
		expectedStatus int
		expectedMsg    string
	}{
		{"unknown status", "", "KAYBOLDU", http.StatusBadRequest, "Geçersiz sipariş durumu"},
		{"unknown order", "424242", "HAZIRLANIYOR", http.StatusNotFound, "Sipariş bulunamadı"},
		{"non-numeric id", "abc", "HAZIRLANIYOR", http.StatusBadRequest, "Geçersiz kimlik"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := s.adminToken()
			id := tt.id
			if id == "" {
				_, ids := s.seedOrders(1)
				id = fmt.Sprint(ids[0])
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, ordersURL+"/"+id+"/status",
				request.UpdateStatusRequest{Status: tt.status}, token)
			httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
		})
	}
}

func (s *adminSuite) TestUpdatePrices() {
	s.Run("new prices flow into quotes and bad values are reported", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricesURL, request.UpdatePricesRequest{
			Products: map[string]string{string(catalog.ProductShirt): "85,5", string(catalog.ProductCoat): "pahali"},
			Services: map[string]string{string(catalog.ServiceWashDry): "", string(catalog.ServiceIronOnly): "-1"},
			Bag:      "250",
		}, token)
		var res response.UpdatePricesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, []string{"product.mont", "service.sadece_utu"}, res.Rejected)
		require.InDelta(t, 250.0, res.Catalog.BagPrice, 0.001)

		quote := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders/quote", request.QuoteRequest{
			Items: []request.OrderLine{
				{Product: string(catalog.ProductShirt), Quantity: "2", Service: string(catalog.ServiceWashDry)},
				{Product: string(catalog.ProductCoat), Quantity: "1", Service: string(catalog.ServiceWash)},
			},
		}, "")
		var q response.QuoteResponse
		httptest.AssertSuccessResponse(t, quote, http.StatusOK, &q)
		// (85.50 + 10) * 2 + 220
		require.InDelta(t, 411.0, q.Total, 0.001)

		prices := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/prices", nil, "")
		var list response.CatalogResponse
		httptest.AssertSuccessResponse(t, prices, http.StatusOK, &list)
		require.InDelta(t, 250.0, list.BagPrice, 0.001)
	})
}

func (s *adminSuite) TestBranches() {
	s.Run("create, update and deactivate", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, branchesURL,
			request.BranchRequest{Name: "Çankaya", City: "Ankara"}, token)
		var created response.BranchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.True(t, created.Active)

		addr := "Tunalı Hilmi Cad. No:5"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf("%s/%d", branchesURL, created.ID),
			request.BranchRequest{Name: "Kavaklıdere", City: "Ankara", Address: &addr}, token)
		var updated response.BranchResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "Kavaklıdere", updated.Name)
		require.NotNil(t, updated.Address)
		require.Equal(t, addr, *updated.Address)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", branchesURL, created.ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		public := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/branches", nil, "")
		var active []response.BranchResponse
		httptest.AssertSuccessResponse(t, public, http.StatusOK, &active)
		require.Len(t, active, 1)
		require.Equal(t, dbtest.DefaultBranchName, active[0].Name)

		all := httptest.PerformRequest(t, s.Router, http.MethodGet, branchesURL, nil, token)
		var everything []response.BranchResponse
		httptest.AssertSuccessResponse(t, all, http.StatusOK, &everything)
		require.Len(t, everything, 2)
		// ordered by city: Ankara before İstanbul
		require.Equal(t, created.ID, everything[0].ID)
		require.False(t, everything[0].Active)
	})

	tests := []struct {
		name           string
		method         string
		path           string
		body           any
		expectedStatus int
	}{
		{"create without city", http.MethodPost, branchesURL, map[string]string{"name": "Moda"}, http.StatusBadRequest},
		{"update unknown", http.MethodPut, branchesURL + "/999999", request.BranchRequest{Name: "X", City: "Y"}, http.StatusNotFound},
		{"deactivate unknown", http.MethodDelete, branchesURL + "/999999", nil, http.StatusNotFound},
		{"bad id", http.MethodDelete, branchesURL + "/0", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, tt.method, tt.path, tt.body, s.adminToken())
			httptest.AssertErrorResponse(s.T(), w, tt.expectedStatus, "")
		})
	}
}

func (s *adminSuite) TestCustomersAndMessages() {
	s.Run("lists customers and contact messages", func() {
		t := s.T()
		token := s.adminToken()
		dbtest.CreateTestCustomer(t, s.DB, "ayse@example.com", "05551112233", string(customer.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/contact",
			request.ContactRequest{Name: "Ali", Message: "Perşembe açık mısınız?"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL, nil, token)
		var customers []response.CustomerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &customers)
		require.Len(t, customers, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL, nil, token)
		var messages []response.ContactMessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &messages)
		require.Len(t, messages, 1)
		require.Equal(t, "Perşembe açık mısınız?", messages[0].Message)
		require.Nil(t, messages[0].Email)
	})

	s.Run("blank contact message", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/contact",
			request.ContactRequest{Name: "Ali", Message: "   "}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Mesaj alanı zorunludur")
	})
}

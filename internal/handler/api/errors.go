package api

import (
	"net/http"
	"strconv"

	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/handler/middleware"
	"dryclean-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// errorMapping pairs a usecase error with the response it produces. The first match wins.
type errorMapping struct {
	target error
	status int
	msg    string
}

func abortMapped(c *gin.Context, err error, mappings ...errorMapping) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	if errs.Is(err, errs.ErrDomainValidation) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}
	httperr.Internal(c, err)
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidID, nil)
		return 0, false
	}
	return id, true
}

func currentCustomer(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetCustomerID(c)
	if !ok || id <= 0 {
		httperr.Abort(c, http.StatusUnauthorized, httperr.MsgUnauthorized)
		return 0, false
	}
	return id, true
}

package api

import (
	"net/http"

	reqdto "dryclean-api/internal/handler/dto/request"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	cmds commands.PriceCommands
	q    queries.CatalogQueries
}

func NewPriceHandler(cmds commands.PriceCommands, q queries.CatalogQueries) *PriceHandler {
	return &PriceHandler{cmds: cmds, q: q}
}

// @Summary Price list
// @Description Labelled products, service surcharges and the laundry bag price
// @Tags prices
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /api/prices [get]
func (h *PriceHandler) List(c *gin.Context) {
	res, err := resdto.FromCatalogView(h.q.View(c.Request.Context()))
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update prices
// @Description Applies every parsable value; blank values are kept and unparsable ones are listed in rejected
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePricesRequest true "Prices keyed by product / service"
// @Success 200 {object} resdto.UpdatePricesResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/prices [put]
func (h *PriceHandler) Update(c *gin.Context) {
	var req reqdto.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.UpdatePrices(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortMapped(c, err)
		return
	}

	catalog, err := resdto.FromCatalogView(result.Catalog)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	rejected := result.Rejected
	if rejected == nil {
		rejected = []string{}
	}
	c.JSON(http.StatusOK, resdto.UpdatePricesResponse{Catalog: catalog, Rejected: rejected})
}

package api

import (
	"net/http"

	"dryclean-api/internal/domain/branch"
	reqdto "dryclean-api/internal/handler/dto/request"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var branchErrors = []errorMapping{
	{branch.ErrNameRequired, http.StatusBadRequest, "Şube adı zorunludur"},
	{branch.ErrCityRequired, http.StatusBadRequest, "Şehir zorunludur"},
	{commands.ErrBranchNotFound, http.StatusNotFound, "Şube bulunamadı"},
	{queries.ErrBranchNotFound, http.StatusNotFound, "Şube bulunamadı"},
}

type BranchHandler struct {
	cmds commands.BranchCommands
	q    queries.BranchQueries
}

func NewBranchHandler(cmds commands.BranchCommands, q queries.BranchQueries) *BranchHandler {
	return &BranchHandler{cmds: cmds, q: q}
}

// @Summary Active branches
// @Tags branches
// @Produce json
// @Success 200 {array} resdto.BranchResponse
// @Router /api/branches [get]
func (h *BranchHandler) ListActive(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	h.respondList(c, views, err)
}

// @Summary All branches
// @Description Includes inactive branches, ordered by city then name
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BranchResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/branches [get]
func (h *BranchHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	h.respondList(c, views, err)
}

// @Summary Create branch
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BranchRequest true "Branch"
// @Success 201 {object} resdto.BranchResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/branches [post]
func (h *BranchHandler) Create(c *gin.Context) {
	var req reqdto.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Şube adı ve şehir zorunludur", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortMapped(c, err, branchErrors...)
		return
	}
	h.respondOne(c, http.StatusCreated, id)
}

// @Summary Update branch
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Param request body reqdto.BranchRequest true "Branch"
// @Success 200 {object} resdto.BranchResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/branches/{id} [put]
func (h *BranchHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Şube adı ve şehir zorunludur", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortMapped(c, err, branchErrors...)
		return
	}
	h.respondOne(c, http.StatusOK, id)
}

// @Summary Deactivate branch
// @Description Branches are never deleted; this hides the branch from checkout
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/branches/{id} [delete]
func (h *BranchHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Deactivate(c.Request.Context(), id); err != nil {
		abortMapped(c, err, branchErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BranchHandler) respondList(c *gin.Context, views []*queries.BranchView, err error) {
	if err != nil {
		abortMapped(c, err)
		return
	}
	res, err := resdto.FromBranchViews(views)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BranchHandler) respondOne(c *gin.Context, status int, id int64) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortMapped(c, err, branchErrors...)
		return
	}
	res, err := resdto.FromBranchView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(status, res)
}

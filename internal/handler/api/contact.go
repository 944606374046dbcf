package api

import (
	"net/http"

	"dryclean-api/internal/domain/contact"
	reqdto "dryclean-api/internal/handler/dto/request"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Message"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Mesaj alanı zorunludur", nil)
		return
	}

	id, err := h.cmds.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortMapped(c, err, errorMapping{contact.ErrEmptyMessage, http.StatusBadRequest, "Mesaj alanı zorunludur"})
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// Package httperr writes the {"error": {"message": ...}} body every endpoint fails with.
package httperr

import (
	"net/http"

	"dryclean-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Fallback texts; handlers pass their own for domain errors.
const (
	MsgInvalidRequest = "Geçersiz istek"
	MsgInvalidID      = "Geçersiz kimlik"
	MsgUnauthorized   = "Oturum açmanız gerekiyor"
	MsgForbidden      = "Bu işlem için yetkiniz yok"
	MsgNotFound       = "Kayıt bulunamadı"
	MsgInternal       = "Sunucu hatası"
)

type Message struct {
	Message string `json:"message"`
}

type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

// NewResponse fills in DefaultMessage when msg is blank.
func NewResponse(status int, msg string, detail any) Response {
	if msg == "" {
		msg = DefaultMessage(status)
	}
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

func DefaultMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return MsgUnauthorized
	case status == http.StatusForbidden:
		return MsgForbidden
	case status == http.StatusNotFound:
		return MsgNotFound
	case status >= http.StatusInternalServerError:
		return MsgInternal
	default:
		return MsgInvalidRequest
	}
}

// AbortWithError records err as a public gin error carrying the response, so
// ErrorHandler can log 5xx causes, and writes the response. A nil err is replaced by
// one holding the message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := NewResponse(status, msg, detail)
	if err == nil {
		err = errs.New(resp.Error.Message)
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort is for rejections that have no underlying error, such as a missing token.
func Abort(c *gin.Context, status int, msg string) {
	AbortWithError(c, status, nil, msg, nil)
}

// Internal answers 500 with MsgInternal and keeps err for the log.
func Internal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}

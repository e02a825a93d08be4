package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
)

const (
	codeInternal       = "INTERNAL"
	codeInvalidRequest = "INVALID_REQUEST"
	codeTooLarge       = "PAYLOAD_TOO_LARGE"
	codeBusy           = "SERVER_BUSY"
	codeNotFound       = "NOT_FOUND"
)

type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// statusFor maps the pipeline failure taxonomy onto HTTP statuses.
func statusFor(err error) (int, string) {
	code, ok := apperror.CodeOf(err)
	if !ok {
		return http.StatusInternalServerError, codeInternal
	}
	if code.ClientError() {
		return http.StatusBadRequest, string(code)
	}
	return http.StatusInternalServerError, string(code)
}

func (s *implServer) writeError(c *gin.Context, err error) {
	status, code := statusFor(err)
	c.AbortWithStatusJSON(status, errorResponse{Detail: err.Error(), Code: code})
}

func abort(c *gin.Context, status int, code, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail, Code: code})
}

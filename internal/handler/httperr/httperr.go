package httperr

import (
	"github.com/gin-gonic/gin"
)

// InternalMessage is the only text a client sees for unexpected failures.
const InternalMessage = "Internal server error"

// Response is the error envelope every endpoint returns. Detail carries field errors
// or, for discount conflicts, the current code record.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the envelope and records err on the context so the
// logging middleware can report the cause the client never sees.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortInternal hides err behind InternalMessage.
func AbortInternal(c *gin.Context, status int, err error) {
	AbortWithError(c, status, err, InternalMessage, nil)
}

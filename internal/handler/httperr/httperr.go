package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat JSON error body every endpoint returns. Status travels
// with the payload so the error middleware can replay it verbatim.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithError records the original error on the gin context for the
// logging middleware and writes the error body in one step.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

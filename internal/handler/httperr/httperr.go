package httperr

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Message string `json:"message"`
}

// Response is the envelope every JSON error on the admin and storefront
// surfaces uses.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

// AbortWithError records err on the gin context for the error middleware and
// writes the envelope. err must not be nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

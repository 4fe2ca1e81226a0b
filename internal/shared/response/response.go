package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiEnvelope wraps non-hypermedia payloads and every error body.
type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, ApiEnvelope{Ok: true, Data: data})
}

func Error(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Model writes a hypermedia representation as the response body itself.
// A non-empty location is sent as the Location header.
func Model(c *gin.Context, status int, location string, model any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(status, model)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

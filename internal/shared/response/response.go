package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform body for rendered (GET) pages. Template
// rendering is outside this service; clients receive the page data
// plus any one-shot flash messages queued by a prior redirect.
type Envelope struct {
	Ok    bool     `json:"ok"`
	Data  any      `json:"data,omitempty"`
	Flash []string `json:"flash,omitempty"`
	Error any      `json:"error,omitempty"`
}

func Render(c *gin.Context, status int, data any, flash []string) {
	c.JSON(status, Envelope{
		Ok:    true,
		Data:  data,
		Flash: flash,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, Envelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

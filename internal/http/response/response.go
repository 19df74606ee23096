package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the error envelope every client of this API already parses.
type Body struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Message: message})
}

func RespondError(c *gin.Context, status int, message string, err error) {
	body := Body{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	c.JSON(status, body)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

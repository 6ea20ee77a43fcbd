package response

import "github.com/gin-gonic/gin"

// Payload is the JSON envelope the update and share endpoints emit.
type Payload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(c *gin.Context, message string) {
	c.JSON(200, Payload{
		Status:  "success",
		Message: message,
	})
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Payload{
		Status:  "error",
		Message: message,
	})
}

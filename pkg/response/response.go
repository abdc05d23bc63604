package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/aminrezaei/hr-panel-api/pkg/errors"
)

// Envelope is the uniform response contract returned by every endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"statusCode"`
}

// JSON sends a success envelope with the given status.
func JSON(c *gin.Context, status int, message string, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Success: true, Message: message, Data: data, StatusCode: status})
}

// OK responds with HTTP 200.
func OK(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusOK, message, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data)
}

// Error sends a failure envelope derived from the typed error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Success: false, Message: appErr.Message, StatusCode: appErr.Status})
}

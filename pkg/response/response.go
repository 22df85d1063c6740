// Package response defines the JSON envelope shared by all HTTP handlers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the uniform response envelope.
type Body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a 200 with data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Code: 0, Message: "ok", Data: data})
}

// Created writes a 201 with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Body{Code: 0, Message: "ok", Data: data})
}

// ErrorWithStatus writes an error envelope with the given HTTP status.
// data is optional detail for the caller (e.g. the permissible maximum
// quantity on a stock rejection).
func ErrorWithStatus(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Body{Code: status, Message: message, Data: data})
}

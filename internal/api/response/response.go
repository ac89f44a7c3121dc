// Package response builds the uniform {success, ...} envelope every API
// operation returns, including every failure path.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List writes the filtered-list envelope. total is the amount sum over
// exactly the returned records.
func List(c *gin.Context, data any, total float64) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"total":   total,
	})
}

// Created writes the 201 envelope carrying the persisted record.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// OK writes a success envelope with only a message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// Data writes a success envelope carrying only a payload.
func Data(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// ValidationFailed writes the 400 envelope with per-field messages.
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

// NotFound writes the 404 envelope.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": message,
	})
}

// StorageError writes the 500 envelope, surfacing the raw error detail for
// diagnostics.
func StorageError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

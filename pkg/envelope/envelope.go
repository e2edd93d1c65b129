// Package envelope implements the uniform {success, data, error} envelope
// spoken on both sides of this service: helpers for emitting it from our own
// HTTP surface and for decoding it from backend responses. success:false is
// the sole authoritative failure signal, independent of transport status.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire shape of every response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// OK sends a 200 success envelope with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created sends a 201 success envelope with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// Fail sends an error envelope. *apperror.AppError values map to their HTTP
// status and user-visible message; anything else becomes a 500.
func Fail(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, gin.H{"success": false, "error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}

// Decode parses a backend response body into target via the envelope.
// A success:false envelope yields an Upstream error carrying the backend's
// message verbatim; a body that is not a valid envelope yields a Network
// error, since a malformed response is indistinguishable from a broken
// transport.
func Decode(body []byte, target interface{}) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apperror.Network(fmt.Errorf("malformed response: %w", err))
	}
	if !env.Success {
		return apperror.Upstream(env.Error)
	}
	if target == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return apperror.Network(fmt.Errorf("missing data in successful response"))
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return apperror.Network(fmt.Errorf("malformed data payload: %w", err))
	}
	return nil
}

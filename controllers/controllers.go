// Package controllers exposes the state container's mutation/query
// surface over HTTP.
package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/harisharnamm/rasoi-v1-sub000/pkg/resp"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

// fail maps the state error taxonomy onto HTTP statuses.
func fail(c *gin.Context, err error) {
	var notFound *state.NotFoundError
	var insufficient *state.InsufficientStockError
	var invalid *state.ValidationError
	var outOfRange *state.IndexOutOfRangeError
	switch {
	case errors.As(err, &notFound):
		resp.NotFound(c, err.Error())
	case errors.As(err, &insufficient):
		resp.Conflict(c, err.Error())
	case errors.As(err, &invalid):
		resp.Invalid(c, invalid.Problems)
	case errors.As(err, &outOfRange):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

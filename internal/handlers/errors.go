package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apierrors "github.com/yukikurage/task-follow-api/internal/errors"
	"github.com/yukikurage/task-follow-api/internal/services"
)

// bindRequest reads the JSON body into req, or the query string when the
// request has no body.
func bindRequest(c *gin.Context, req interface{}) bool {
	var err error
	if c.Request.ContentLength != 0 {
		err = c.ShouldBindJSON(req)
	} else {
		err = c.ShouldBindQuery(req)
	}
	if err != nil {
		respondBindError(c)
		return false
	}
	return true
}

func respondBindError(c *gin.Context) {
	apierrors.BadRequest(c, "Invalid request body")
}

// respondServiceError maps a service error kind onto a status code. Storage
// failures are logged and answered with a generic message.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, err.Error())
	default:
		log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}

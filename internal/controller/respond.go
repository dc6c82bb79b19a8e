// Package controller holds helpers shared by the platform and user HTTP
// surfaces.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/apperr"
	"github.com/quizzyhq/quizzy-core/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError translates a service error to an HTTP status by its kind.
// Unclassified errors are logged and masked as a generic 500.
func RespondError(ctx *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindBusinessRule:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindNotFound:
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Something went wrong"})
	}
}

// ParseID reads a positive numeric path parameter, writing a 400 on failure.
func ParseID(ctx *gin.Context, param string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + param + " format"})
		return 0, false
	}
	return uint(val), true
}

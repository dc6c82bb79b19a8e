// Package middleware extracts caller identity from trusted gateway headers.
// Authentication itself happens upstream; this service only consumes the
// resolved identifiers.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/internal/dto"
)

const (
	platformHeader = "X-Platform-ID"
	userHeader     = "X-User-ID"

	platformKey = "platform_id"
	userKey     = "user_id"
)

// RequirePlatform rejects requests that lack a platform identity.
func RequirePlatform() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := headerID(ctx, platformHeader)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Platform identity required"})
			return
		}
		ctx.Set(platformKey, id)
		ctx.Next()
	}
}

// RequireUser rejects requests that lack a candidate identity.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := headerID(ctx, userHeader)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "User identity required"})
			return
		}
		ctx.Set(userKey, id)
		ctx.Next()
	}
}

func PlatformID(ctx *gin.Context) uint {
	return ctx.GetUint(platformKey)
}

func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(userKey)
}

func headerID(ctx *gin.Context, header string) (uint, bool) {
	raw := ctx.GetHeader(header)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

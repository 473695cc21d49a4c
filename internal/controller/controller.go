package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/middleware"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondError maps service errors to HTTP responses. Anything unrecognised
// becomes a 500 carrying only fallbackMsg.
func RespondError(ctx *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request", Details: []string{err.Error()}})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallbackMsg})
	}
}

// ResolveUserID picks the acting user: the token subject when auth is on,
// otherwise the claimed id or the user_id query parameter. It writes the
// error response itself and returns false when no user can be resolved.
func ResolveUserID(ctx *gin.Context, claimed string) (string, bool) {
	if tokenUser, ok := middleware.AuthenticatedUserID(ctx); ok {
		if claimed != "" && claimed != tokenUser {
			log.Warn().Str("tokenUser", tokenUser).Str("claimedUser", claimed).Msg("ResolveUserID: user id mismatch")
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "userId does not match the authenticated user"})
			return "", false
		}
		return tokenUser, true
	}
	if claimed == "" {
		claimed = ctx.Query("user_id")
	}
	if claimed == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "userId is required"})
		return "", false
	}
	return claimed, true
}

// Health godoc
// @Summary Liveness probe
// @Description Reports whether the service can reach its database.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} dto.ErrorResponse
// @Router /healthz [get]
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(pingCtx)
		}
		if err != nil {
			log.Warn().Err(err).Msg("Health: database unreachable")
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "database unreachable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
